package pricing

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

// fakeRepo keeps plans and features in memory, sorted the way the mongo
// repository returns them.
type fakeRepo struct {
	plans    []Plan
	features []Feature
	calc     *Calculator
}

func (f *fakeRepo) ListPlans(ctx context.Context) ([]Plan, error) {
	out := make([]Plan, len(f.plans))
	copy(out, f.plans)
	sortPlans(out)
	return out, nil
}

func (f *fakeRepo) GetPlanBySlug(ctx context.Context, slug string) (Plan, error) {
	for _, p := range f.plans {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Plan{}, mongo.ErrNoDocuments
}

func (f *fakeRepo) UpsertPlans(ctx context.Context, plans []Plan) error {
	for _, p := range plans {
		replaced := false
		for i := range f.plans {
			if f.plans[i].ID == p.ID {
				f.plans[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			f.plans = append(f.plans, p)
		}
	}
	return nil
}

func (f *fakeRepo) DeletePlan(ctx context.Context, id string) (bool, error) {
	for i := range f.plans {
		if f.plans[i].ID == id {
			f.plans = append(f.plans[:i], f.plans[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ListFeatures(ctx context.Context) ([]Feature, error) {
	out := make([]Feature, len(f.features))
	copy(out, f.features)
	sortFeatures(out)
	return out, nil
}

func (f *fakeRepo) UpsertFeatures(ctx context.Context, features []Feature) error {
	for _, ft := range features {
		replaced := false
		for i := range f.features {
			if f.features[i].ID == ft.ID {
				f.features[i] = ft
				replaced = true
				break
			}
		}
		if !replaced {
			f.features = append(f.features, ft)
		}
	}
	return nil
}

func (f *fakeRepo) DeleteFeature(ctx context.Context, id string) (bool, error) {
	for i := range f.features {
		if f.features[i].ID == id {
			f.features = append(f.features[:i], f.features[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) GetCalculator(ctx context.Context) (Calculator, error) {
	if f.calc == nil {
		return Calculator{}, mongo.ErrNoDocuments
	}
	return *f.calc, nil
}

func (f *fakeRepo) SaveCalculator(ctx context.Context, calc Calculator) error {
	f.calc = &calc
	return nil
}

func fourPlans() []Plan {
	return []Plan{
		{ID: "p1", Name: "One", Slug: "one", Order: 1},
		{ID: "p2", Name: "Two", Slug: "two", Order: 2},
		{ID: "p3", Name: "Three", Slug: "three", Order: 3},
		{ID: "p4", Name: "Four", Slug: "four", Order: 4},
	}
}

func assertOrders(t *testing.T, plans []Plan, ids ...string) {
	t.Helper()
	if len(plans) != len(ids) {
		t.Fatalf("expected %d plans, got %d", len(ids), len(plans))
	}
	for i, p := range plans {
		if p.ID != ids[i] {
			t.Fatalf("position %d: expected %s, got %s", i, ids[i], p.ID)
		}
		if p.Order != i+1 {
			t.Fatalf("plan %s: expected order %d, got %d", p.ID, i+1, p.Order)
		}
	}
}

func TestRenumberIsContiguousOneBased(t *testing.T) {
	plans := []Plan{
		{ID: "a", Order: 7},
		{ID: "b", Order: 9},
		{ID: "c", Order: 42},
	}
	plans = renumber(plans)
	for i, p := range plans {
		if p.Order != i+1 {
			t.Fatalf("expected order %d, got %d", i+1, p.Order)
		}
	}
}

func TestDeletePlanRenumbersSurvivors(t *testing.T) {
	repo := &fakeRepo{plans: fourPlans()}
	svc := NewService(repo)

	remaining, err := svc.DeletePlan(context.Background(), "p2")
	if err != nil {
		t.Fatalf("DeletePlan error: %v", err)
	}
	assertOrders(t, remaining, "p1", "p3", "p4")
}

func TestDeletePlanNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{plans: fourPlans()})
	_, err := svc.DeletePlan(context.Background(), "missing")
	if !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestMovePlanUpAndDown(t *testing.T) {
	repo := &fakeRepo{plans: fourPlans()}
	svc := NewService(repo)

	plans, err := svc.MovePlan(context.Background(), "p3", "up")
	if err != nil {
		t.Fatalf("MovePlan error: %v", err)
	}
	assertOrders(t, plans, "p1", "p3", "p2", "p4")

	plans, err = svc.MovePlan(context.Background(), "p3", "down")
	if err != nil {
		t.Fatalf("MovePlan error: %v", err)
	}
	assertOrders(t, plans, "p1", "p2", "p3", "p4")
}

func TestMovePlanAtEdgeIsNoop(t *testing.T) {
	repo := &fakeRepo{plans: fourPlans()}
	svc := NewService(repo)

	plans, err := svc.MovePlan(context.Background(), "p1", "up")
	if err != nil {
		t.Fatalf("MovePlan error: %v", err)
	}
	assertOrders(t, plans, "p1", "p2", "p3", "p4")

	plans, err = svc.MovePlan(context.Background(), "p4", "down")
	if err != nil {
		t.Fatalf("MovePlan error: %v", err)
	}
	assertOrders(t, plans, "p1", "p2", "p3", "p4")
}

func TestSavePlansRejectsDuplicateSlugs(t *testing.T) {
	svc := NewService(&fakeRepo{})
	_, err := svc.SavePlans(context.Background(), []PlanInput{
		{Name: "A", Slug: "Growth Plan", Price: "$10", Features: []string{"x"}, Order: 1},
		{Name: "B", Slug: "growth-plan", Price: "$20", Features: []string{"y"}, Order: 2},
	})
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}

func TestSavePlansSortsAndDerivesIDs(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	plans, err := svc.SavePlans(context.Background(), []PlanInput{
		{Name: "Second", Slug: "second", Price: "$20", Features: []string{"x"}, Order: 9},
		{Name: "First", Slug: "first", Price: "$10", Features: []string{"x"}, Order: 3},
	})
	if err != nil {
		t.Fatalf("SavePlans error: %v", err)
	}
	assertOrders(t, plans, "plan-first", "plan-second")
}

func TestSaveCalculatorRenumbersBothLevels(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	calc, err := svc.SaveCalculator(context.Background(), SaveCalculatorRequest{
		Title:     "Estimate",
		BasePrice: 100,
		Services: []CalculatorService{
			{Name: "B", Order: 5, Options: []CalculatorOption{
				{Name: "opt2", Order: 12},
				{Name: "opt1", Order: 4},
			}},
			{Name: "A", Order: 2},
		},
	})
	if err != nil {
		t.Fatalf("SaveCalculator error: %v", err)
	}
	if calc.Services[0].Name != "A" || calc.Services[0].Order != 1 {
		t.Fatalf("unexpected first service: %+v", calc.Services[0])
	}
	if calc.Services[1].Order != 2 {
		t.Fatalf("expected second service order 2, got %d", calc.Services[1].Order)
	}
	opts := calc.Services[1].Options
	if opts[0].Name != "opt1" || opts[0].Order != 1 || opts[1].Order != 2 {
		t.Fatalf("unexpected option ordering: %+v", opts)
	}
}

func TestMoveFeatureRenumbers(t *testing.T) {
	repo := &fakeRepo{features: []Feature{
		{ID: "f1", Name: "A", Order: 1},
		{ID: "f2", Name: "B", Order: 2},
		{ID: "f3", Name: "C", Order: 3},
	}}
	svc := NewService(repo)

	features, err := svc.MoveFeature(context.Background(), "f1", "down")
	if err != nil {
		t.Fatalf("MoveFeature error: %v", err)
	}
	if features[0].ID != "f2" || features[0].Order != 1 {
		t.Fatalf("unexpected first feature: %+v", features[0])
	}
	if features[1].ID != "f1" || features[1].Order != 2 {
		t.Fatalf("unexpected second feature: %+v", features[1])
	}
}
