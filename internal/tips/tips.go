// internal/tips/tips.go
//
// Static tip collection: markdown files with YAML frontmatter under
// content/tips/*.md.
//
// Context
// -------
// Tips are the hand-curated half of the content set (database insights
// being the other).  Each file carries its metadata in a `---` fenced
// frontmatter block; the body stays raw markdown because HTML compilation
// belongs to the render layer, not here.  The file's base name is the
// tip's slug, so lookup is an exact map hit with no fuzzy tier.
//
// Notes
// -----
//   - Files that fail to parse are skipped with a warning instead of
//     failing the whole collection; one bad commit should not blank the
//     site.
//   - Oxford commas, two spaces after periods.

package tips

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Author identifies who contributed a tip.
type Author struct {
	Name   string `yaml:"name" json:"name"`
	GitHub string `yaml:"github" json:"github,omitempty"`
	X      string `yaml:"x" json:"x,omitempty"`
}

// Media holds the tip's demo assets.
type Media struct {
	Video       string `yaml:"video" json:"video,omitempty"`
	TweetURL    string `yaml:"tweetUrl" json:"tweetUrl,omitempty"`
	Screenshots []struct {
		URL     string `yaml:"url" json:"url"`
		Caption string `yaml:"caption" json:"caption,omitempty"`
	} `yaml:"screenshots" json:"screenshots,omitempty"`
}

// Tip is one markdown document plus its frontmatter.
type Tip struct {
	Path       string    `json:"path"` // slug: file base name without .md
	Title      string    `yaml:"title" json:"title"`
	Summary    string    `yaml:"summary" json:"summary"`
	Date       time.Time `yaml:"date" json:"date"`
	Author     Author    `yaml:"author" json:"author"`
	Media      Media     `yaml:"media" json:"media"`
	Feature    string    `yaml:"feature" json:"feature"`
	Categories []string  `yaml:"categories" json:"categories"`
	Difficulty string    `yaml:"difficulty" json:"difficulty"`
	Body       string    `json:"-"` // raw markdown
}

// Collection is the loaded tip set, ordered newest first.
type Collection struct {
	tips   []Tip
	byPath map[string]int
}

var frontmatterFence = []byte("---")

// Load reads every *.md under dir.  Missing dir yields an empty
// collection, not an error, so a DB-only deployment still boots.
func Load(dir string) (*Collection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &Collection{byPath: map[string]int{}}, nil
		}
		return nil, err
	}

	var out []Tip
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		full := filepath.Join(dir, e.Name())
		tip, err := parseFile(full)
		if err != nil {
			zap.S().Warnw("tip skipped", "file", e.Name(), "err", err)
			continue
		}
		tip.Path = strings.TrimSuffix(e.Name(), ".md")
		out = append(out, *tip)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })

	byPath := make(map[string]int, len(out))
	for i := range out {
		byPath[out[i].Path] = i
	}
	return &Collection{tips: out, byPath: byPath}, nil
}

// All returns the tips newest first.
func (c *Collection) All() []Tip { return c.tips }

// ByPath returns the tip whose file base name equals slug.
func (c *Collection) ByPath(slug string) (*Tip, bool) {
	i, ok := c.byPath[slug]
	if !ok {
		return nil, false
	}
	return &c.tips[i], true
}

// Categories returns the distinct category labels across the set, sorted.
func (c *Collection) Categories() []string {
	set := map[string]struct{}{}
	for i := range c.tips {
		for _, cat := range c.tips[i].Categories {
			set[cat] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// parseFile splits frontmatter from body and unmarshals the YAML.
func parseFile(path string) (*Tip, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rest, ok := bytes.CutPrefix(raw, frontmatterFence)
	if !ok {
		return nil, fmt.Errorf("missing frontmatter fence")
	}
	idx := bytes.Index(rest, append([]byte("\n"), frontmatterFence...))
	if idx < 0 {
		return nil, fmt.Errorf("unterminated frontmatter")
	}

	var tip Tip
	if err := yaml.Unmarshal(rest[:idx], &tip); err != nil {
		return nil, err
	}
	if tip.Title == "" {
		return nil, fmt.Errorf("frontmatter missing title")
	}
	if tip.Difficulty == "" {
		tip.Difficulty = "beginner"
	}

	body := rest[idx+1+len(frontmatterFence):]
	tip.Body = strings.TrimSpace(string(body))
	return &tip, nil
}
