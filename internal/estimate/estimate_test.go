package estimate

import (
	"errors"
	"testing"
)

func TestCalculateSEOStandardThreeMonths(t *testing.T) {
	res, err := Calculate(Selection{
		ID:       1,
		Service:  "seo",
		Features: "standard",
		Timeline: "3months",
	})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if res.Total != 2250 {
		t.Fatalf("expected total 2250, got %v", res.Total)
	}
	if res.Monthly != 750 {
		t.Fatalf("expected monthly 750, got %v", res.Monthly)
	}
	if res.Upfront != 675 {
		t.Fatalf("expected upfront 675, got %v", res.Upfront)
	}
	if res.EstimatedCost != "$2,250" || res.MonthlyPay != "$750" || res.TotalUpfront != "$675" {
		t.Fatalf("unexpected formatted amounts: %q %q %q", res.EstimatedCost, res.MonthlyPay, res.TotalUpfront)
	}
	if res.PlanName != "Option 1" {
		t.Fatalf("unexpected plan name %q", res.PlanName)
	}
}

func TestCalculateUnknownService(t *testing.T) {
	_, err := Calculate(Selection{Service: "skywriting", Features: "basic", Timeline: "1month"})
	if !errors.Is(err, ErrUnknownService) {
		t.Fatalf("expected ErrUnknownService, got %v", err)
	}
}

func TestCalculateUnknownTierAndTimelineFallBack(t *testing.T) {
	res, err := Calculate(Selection{Service: "web", Features: "deluxe", Timeline: "someday"})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if res.Total != 1000 {
		t.Fatalf("expected neutral factors, got total %v", res.Total)
	}
	if res.Monthly != 1000 || res.Upfront != 300 {
		t.Fatalf("unexpected monthly %v upfront %v", res.Monthly, res.Upfront)
	}
}

func TestFormatDollars(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{750, "$750"},
		{2250, "$2,250"},
		{1234567, "$1,234,567"},
		{437.5, "$437.50"},
	}
	for _, c := range cases {
		if got := formatDollars(c.in); got != c.want {
			t.Fatalf("formatDollars(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
