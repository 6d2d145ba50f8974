package face

import (
	"strings"
	"testing"
)

const (
	openMarker   = "O           O"
	halfMarker   = "-           -"
	closedMarker = "-------------"
)

func tierOf(frame string) string {
	switch {
	case strings.Contains(frame, openMarker):
		return "open"
	case strings.Contains(frame, closedMarker):
		return "closed"
	case strings.Contains(frame, halfMarker):
		return "half"
	default:
		return "unknown"
	}
}

func TestRenderTiers(t *testing.T) {
	tests := []struct {
		openness float64
		want     string
	}{
		{1.0, "open"},
		{0.8, "open"},
		{0.66, "open"}, // boundary resolves to the more open tier
		{0.65, "half"},
		{0.5, "half"},
		{0.33, "half"}, // boundary resolves to the more open tier
		{0.32, "closed"},
		{0.1, "closed"},
		{0.0, "closed"},
		{1.7, "open"},    // out of range clamps by threshold
		{-0.4, "closed"}, // out of range clamps by threshold
	}

	for _, tt := range tests {
		if got := tierOf(Render(tt.openness)); got != tt.want {
			t.Errorf("Render(%v): got %s tier, want %s", tt.openness, got, tt.want)
		}
	}
}

func TestRenderLayout(t *testing.T) {
	lines := strings.Split(Render(1.0), "\n")
	if len(lines) != len(eyeOpen) {
		t.Fatalf("got %d lines, want %d", len(lines), len(eyeOpen))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, leftMargin) {
			t.Errorf("line %d missing left margin: %q", i, line)
		}
		want := leftMargin + eyeOpen[i] + eyeGap + eyeOpen[i]
		if line != want {
			t.Errorf("line %d: got %q, want %q", i, line, want)
		}
	}
}

func TestRenderPure(t *testing.T) {
	if Render(0.5) != Render(0.5) {
		t.Error("Render is not deterministic")
	}
}
