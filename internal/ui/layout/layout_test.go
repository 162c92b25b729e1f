package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected too small for narrow terminal")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected minimum size to fit")
	}
}

func TestRenderHeader_ContainsTitleAndStatus(t *testing.T) {
	h := RenderHeader("Quiz", "Q 2/5", 80)
	if !strings.Contains(h, "Quiz") || !strings.Contains(h, "Q 2/5") {
		t.Errorf("header missing title or status: %q", h)
	}
}

func TestRenderFooter_ContainsHints(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Submit") {
		t.Errorf("footer missing hint: %q", f)
	}
}
