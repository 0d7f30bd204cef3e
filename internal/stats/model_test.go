package stats

import "testing"

func TestNormalizeIconFallsBack(t *testing.T) {
	if got := normalizeIcon("Award"); got != "Award" {
		t.Fatalf("expected known icon kept, got %q", got)
	}
	if got := normalizeIcon("Sparkles"); got != DefaultIcon {
		t.Fatalf("expected fallback icon, got %q", got)
	}
	if got := normalizeIcon(""); got != DefaultIcon {
		t.Fatalf("expected fallback for empty icon, got %q", got)
	}
}

func TestNormalizeColorFallsBack(t *testing.T) {
	if got := normalizeColor("text-green-400"); got != "text-green-400" {
		t.Fatalf("expected known color kept, got %q", got)
	}
	if got := normalizeColor("hotpink"); got != DefaultColor {
		t.Fatalf("expected fallback color, got %q", got)
	}
}

func TestDefaultStats(t *testing.T) {
	defaults := DefaultStats()
	if len(defaults) != 4 {
		t.Fatalf("expected 4 default stats, got %d", len(defaults))
	}
	first := defaults[0]
	if first.Icon != "Star" || first.Value != 500 || first.Label != "Projects Completed" || first.Suffix != "+" {
		t.Fatalf("unexpected first stat: %+v", first)
	}
	for i, s := range defaults {
		if s.Order != i+1 {
			t.Fatalf("stat %s: expected order %d, got %d", s.ID, i+1, s.Order)
		}
	}
}
