package validation

import "testing"

type slugPayload struct {
	Slug string `validate:"required,slug"`
}

type datePayload struct {
	Date string `validate:"required,date"`
}

type heroPayload struct {
	Type string `validate:"required,herotype"`
}

func TestSlugRule(t *testing.T) {
	val := New()

	if err := val.Struct(slugPayload{Slug: "digital-marketing-2024"}); err != nil {
		t.Fatalf("expected valid slug, got %v", err)
	}
	for _, bad := range []string{"Has Spaces", "UPPER", "trailing-", "-leading", "double--dash", ""} {
		if err := val.Struct(slugPayload{Slug: bad}); err == nil {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestDateRule(t *testing.T) {
	val := New()

	if err := val.Struct(datePayload{Date: "2024-06-15"}); err != nil {
		t.Fatalf("expected valid date, got %v", err)
	}
	if err := val.Struct(datePayload{Date: "15/06/2024"}); err == nil {
		t.Fatalf("expected non-ISO date to be rejected")
	}
}

func TestHeroTypeRule(t *testing.T) {
	val := New()

	for _, ok := range []string{"default", "solid", "image", "video"} {
		if err := val.Struct(heroPayload{Type: ok}); err != nil {
			t.Fatalf("expected %q accepted, got %v", ok, err)
		}
	}
	if err := val.Struct(heroPayload{Type: "gradient"}); err == nil {
		t.Fatalf("expected unknown hero type to be rejected")
	}
}
