// internal/tips/tips_test.go
//
// Unit-tests for the static tip loader using a temp directory.

package tips

import (
	"os"
	"path/filepath"
	"testing"
)

const goodTip = `---
title: Split Long Sessions
summary: Start a fresh chat when the context drifts.
date: 2025-01-15
author:
  name: Sam Chen
media:
  video: https://cdn.example.com/split.mp4
feature: Chat
categories:
  - Workflow
difficulty: beginner
---

Long sessions accumulate stale context.  Start fresh and restate the goal.
`

const olderTip = `---
title: Pin Your Model
summary: Lock the model per project so results stay comparable.
date: 2024-11-02
author:
  name: Sam Chen
media:
  tweetUrl: https://x.com/example/status/1
feature: Settings
categories:
  - Workflow
  - Settings
---

Body text here.
`

func writeTips(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad_OrderAndLookup(t *testing.T) {
	dir := writeTips(t, map[string]string{
		"split-long-sessions.md": goodTip,
		"pin-your-model.md":      olderTip,
		"notes.txt":              "ignored",
	})

	col, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	all := col.All()
	if len(all) != 2 {
		t.Fatalf("tips = %d, want 2", len(all))
	}
	// Newest first.
	if all[0].Path != "split-long-sessions" {
		t.Fatalf("order: %s first", all[0].Path)
	}

	tip, ok := col.ByPath("pin-your-model")
	if !ok {
		t.Fatal("ByPath miss")
	}
	if tip.Title != "Pin Your Model" || tip.Feature != "Settings" {
		t.Fatalf("frontmatter: %+v", tip)
	}
	if tip.Difficulty != "beginner" {
		t.Fatalf("difficulty default: %q", tip.Difficulty)
	}
	if tip.Body != "Body text here." {
		t.Fatalf("body: %q", tip.Body)
	}

	if _, ok := col.ByPath("nope"); ok {
		t.Fatal("ByPath hit on missing slug")
	}
}

func TestLoad_SkipsBrokenFiles(t *testing.T) {
	dir := writeTips(t, map[string]string{
		"good.md":     goodTip,
		"no-fence.md": "just markdown, no frontmatter",
		"bad-yaml.md": "---\ntitle: [unclosed\n---\nbody",
		"no-title.md": "---\nsummary: missing title\n---\nbody",
	})

	col, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(col.All()) != 1 {
		t.Fatalf("broken files not skipped: %d", len(col.All()))
	}
}

func TestLoad_MissingDirIsEmpty(t *testing.T) {
	col, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing dir must not error: %v", err)
	}
	if len(col.All()) != 0 {
		t.Fatalf("phantom tips: %d", len(col.All()))
	}
}

func TestCategories(t *testing.T) {
	dir := writeTips(t, map[string]string{
		"a.md": goodTip,
		"b.md": olderTip,
	})

	col, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := col.Categories()
	if len(got) != 2 || got[0] != "Settings" || got[1] != "Workflow" {
		t.Fatalf("categories: %v", got)
	}
}
