package pricing

import (
	"context"
	"encoding/json"
	"testing"
)

func TestCellJSONRoundTrip(t *testing.T) {
	row := Feature{
		ID:           "f1",
		Name:         "SEO Optimization",
		Starter:      BoolCell(true),
		Professional: TextCell("Advanced"),
		Organization: TextCell("Premium"),
		Order:        1,
	}

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw error: %v", err)
	}
	if v, ok := raw["starter"].(bool); !ok || !v {
		t.Fatalf("expected starter to encode as raw bool, got %v", raw["starter"])
	}
	if v, ok := raw["professional"].(string); !ok || v != "Advanced" {
		t.Fatalf("expected professional to encode as raw string, got %v", raw["professional"])
	}

	var back Feature
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if back.Starter.Kind != CellBool || !back.Starter.Bool {
		t.Fatalf("unexpected starter cell: %+v", back.Starter)
	}
	if back.Professional.Kind != CellText || back.Professional.Text != "Advanced" {
		t.Fatalf("unexpected professional cell: %+v", back.Professional)
	}
}

func TestCellRejectsOtherShapes(t *testing.T) {
	var c Cell
	if err := json.Unmarshal([]byte(`{"nested":true}`), &c); err == nil {
		t.Fatalf("expected error for object cell")
	}
	if err := json.Unmarshal([]byte(`42`), &c); err == nil {
		t.Fatalf("expected error for numeric cell")
	}
}

func TestPublicPlansFallBackToDefaults(t *testing.T) {
	svc := NewService(&fakeRepo{})

	plans, err := svc.PublicPlans(context.Background())
	if err != nil {
		t.Fatalf("PublicPlans error: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("expected 3 default plans, got %d", len(plans))
	}
	prices := []string{plans[0].Price, plans[1].Price, plans[2].Price}
	if prices[0] != "$99" || prices[1] != "$249" || prices[2] != "$599" {
		t.Fatalf("unexpected default prices: %v", prices)
	}
	if !plans[1].IsProfessional || plans[1].Badge != "MOST POPULAR" {
		t.Fatalf("unexpected professional tier: %+v", plans[1])
	}
}

func TestPublicPlanBySlugChecksDefaults(t *testing.T) {
	svc := NewService(&fakeRepo{})

	plan, err := svc.PublicPlanBySlug(context.Background(), "professional")
	if err != nil {
		t.Fatalf("PublicPlanBySlug error: %v", err)
	}
	if plan.Price != "$249" {
		t.Fatalf("expected default professional plan, got %+v", plan)
	}

	if _, err := svc.PublicPlanBySlug(context.Background(), "enterprise"); err != ErrPlanNotFound {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestAdminPlansSeedsEmptyCollection(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	plans, err := svc.AdminPlans(context.Background())
	if err != nil {
		t.Fatalf("AdminPlans error: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("expected 3 seeded plans, got %d", len(plans))
	}
	if len(repo.plans) != 3 {
		t.Fatalf("expected defaults persisted, repo has %d", len(repo.plans))
	}
}
