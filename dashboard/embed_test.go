package dashboard

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssets_IndexPlaceholders(t *testing.T) {
	content, err := fs.ReadFile(Assets, "assets/index.html")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	page := string(content)

	for _, want := range []string{"{{.Title}}", "{{.View}}", "/api/sse"} {
		if !strings.Contains(page, want) {
			t.Errorf("index.html missing %q", want)
		}
	}
}

// TestAssets_PatchesCardsByID guards the live update path: cards are matched
// by data-id and re-parented, never swapped out with the whole container.
func TestAssets_PatchesCardsByID(t *testing.T) {
	content, err := fs.ReadFile(Assets, "assets/index.html")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	page := string(content)

	for _, want := range []string{"ev.cards", "dataset.id", "patchCard(card, next)"} {
		if !strings.Contains(page, want) {
			t.Errorf("index.html missing %q", want)
		}
	}
	if strings.Contains(page, "current.replaceWith(") {
		t.Error("index.html should not replace the whole container on update")
	}
}
