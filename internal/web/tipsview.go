// internal/web/tipsview.go
//
// View models for the tip endpoints.  The index omits the markdown body;
// the detail payload carries it raw for the client-side renderer.

package web

import "github.com/vibecodingtips/vibetips/internal/tips"

type tipsItem struct {
	Path       string   `json:"path"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Date       string   `json:"date"`
	Author     string   `json:"author"`
	Feature    string   `json:"feature"`
	Categories []string `json:"categories"`
	Difficulty string   `json:"difficulty"`
}

type tipsItemDetail struct {
	*tips.Tip
	Markdown string `json:"markdown"`
}

func tipItems(s *Server) []tipsItem {
	all := s.tips.All()
	out := make([]tipsItem, len(all))
	for i := range all {
		t := &all[i]
		out[i] = tipsItem{
			Path:       t.Path,
			Title:      t.Title,
			Summary:    t.Summary,
			Date:       t.Date.Format("2006-01-02"),
			Author:     t.Author.Name,
			Feature:    t.Feature,
			Categories: t.Categories,
			Difficulty: t.Difficulty,
		}
	}
	return out
}
