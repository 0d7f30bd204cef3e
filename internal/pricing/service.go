package pricing

import (
	"context"
	"errors"
	"strings"

	"zenith-backend/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrPlanNotFound    = errors.New("pricing plan not found")
	ErrFeatureNotFound = errors.New("comparison feature not found")
	ErrSlugExists      = errors.New("slug already exists")
	ErrInvalidSlug     = errors.New("invalid slug")
	ErrDuplicateSlug   = errors.New("duplicate slug in batch")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// PublicPlans returns the plan list for the public pricing page. An empty
// collection falls back to the built-in default tiers so the page never
// renders bare.
func (s *Service) PublicPlans(ctx context.Context) ([]Plan, error) {
	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return DefaultPlans(), nil
	}
	return plans, nil
}

// PublicPlanBySlug resolves a single plan for the detail page, checking the
// defaults when the store has no match.
func (s *Service) PublicPlanBySlug(ctx context.Context, slug string) (Plan, error) {
	slug = strings.TrimSpace(slug)
	plan, err := s.repo.GetPlanBySlug(ctx, slug)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return Plan{}, err
	}
	for _, fallback := range DefaultPlans() {
		if fallback.Slug == slug {
			return fallback, nil
		}
	}
	return Plan{}, ErrPlanNotFound
}

// AdminPlans seeds the default tiers into an empty collection before
// returning, so the back office always edits persisted documents.
func (s *Service) AdminPlans(ctx context.Context) ([]Plan, error) {
	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	if len(plans) > 0 {
		return plans, nil
	}

	defaults := DefaultPlans()
	if err := s.repo.UpsertPlans(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

// SavePlans persists the full batch the admin page submits: slugs are
// normalized and checked for in-batch duplicates, the list is sorted by the
// submitted order and renumbered contiguously from 1.
func (s *Service) SavePlans(ctx context.Context, inputs []PlanInput) ([]Plan, error) {
	plans := make([]Plan, 0, len(inputs))
	seen := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		slug := utils.Slugify(in.Slug)
		if slug == "" {
			return nil, ErrInvalidSlug
		}
		if _, dup := seen[slug]; dup {
			return nil, ErrDuplicateSlug
		}
		seen[slug] = struct{}{}

		id := strings.TrimSpace(in.ID)
		if id == "" {
			id = "plan-" + slug
		}
		plans = append(plans, Plan{
			ID:             id,
			Name:           strings.TrimSpace(in.Name),
			Slug:           slug,
			Description:    strings.TrimSpace(in.Description),
			Price:          strings.TrimSpace(in.Price),
			Period:         strings.TrimSpace(in.Period),
			Features:       trimAll(in.Features),
			ButtonText:     strings.TrimSpace(in.ButtonText),
			Badge:          strings.TrimSpace(in.Badge),
			IsProfessional: in.IsProfessional,
			Order:          in.Order,
			Tagline:        strings.TrimSpace(in.Tagline),
			Title:          strings.TrimSpace(in.Title),
			Discount:       strings.TrimSpace(in.Discount),
		})
	}

	sortPlans(plans)
	plans = renumber(plans)

	if err := s.repo.UpsertPlans(ctx, plans); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrSlugExists
		}
		return nil, err
	}
	return plans, nil
}

// DeletePlan removes one plan and renumbers the survivors so the order
// sequence stays gapless.
func (s *Service) DeletePlan(ctx context.Context, id string) ([]Plan, error) {
	deleted, err := s.repo.DeletePlan(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, ErrPlanNotFound
	}

	remaining, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	remaining = renumber(remaining)
	if err := s.repo.UpsertPlans(ctx, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

// MovePlan swaps a plan with its neighbor in the given direction and
// persists the renumbered list.
func (s *Service) MovePlan(ctx context.Context, id, direction string) ([]Plan, error) {
	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, plan := range plans {
		if plan.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrPlanNotFound
	}

	swap := idx - 1
	if direction == "down" {
		swap = idx + 1
	}
	if swap < 0 || swap >= len(plans) {
		return plans, nil
	}
	plans[idx], plans[swap] = plans[swap], plans[idx]

	plans = renumber(plans)
	if err := s.repo.UpsertPlans(ctx, plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *Service) PublicFeatures(ctx context.Context) ([]Feature, error) {
	features, err := s.repo.ListFeatures(ctx)
	if err != nil {
		return nil, err
	}
	if len(features) == 0 {
		return DefaultFeatures(), nil
	}
	return features, nil
}

func (s *Service) AdminFeatures(ctx context.Context) ([]Feature, error) {
	features, err := s.repo.ListFeatures(ctx)
	if err != nil {
		return nil, err
	}
	if len(features) > 0 {
		return features, nil
	}

	defaults := DefaultFeatures()
	if err := s.repo.UpsertFeatures(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

func (s *Service) SaveFeatures(ctx context.Context, inputs []FeatureInput) ([]Feature, error) {
	features := make([]Feature, 0, len(inputs))
	for _, in := range inputs {
		id := strings.TrimSpace(in.ID)
		if id == "" {
			id = primitive.NewObjectID().Hex()
		}
		features = append(features, Feature{
			ID:           id,
			Name:         strings.TrimSpace(in.Name),
			Starter:      in.Starter,
			Professional: in.Professional,
			Organization: in.Organization,
			Order:        in.Order,
		})
	}

	sortFeatures(features)
	features = renumber(features)

	if err := s.repo.UpsertFeatures(ctx, features); err != nil {
		return nil, err
	}
	return features, nil
}

func (s *Service) DeleteFeature(ctx context.Context, id string) ([]Feature, error) {
	deleted, err := s.repo.DeleteFeature(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, ErrFeatureNotFound
	}

	remaining, err := s.repo.ListFeatures(ctx)
	if err != nil {
		return nil, err
	}
	remaining = renumber(remaining)
	if err := s.repo.UpsertFeatures(ctx, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

func (s *Service) MoveFeature(ctx context.Context, id, direction string) ([]Feature, error) {
	features, err := s.repo.ListFeatures(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, feature := range features {
		if feature.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrFeatureNotFound
	}

	swap := idx - 1
	if direction == "down" {
		swap = idx + 1
	}
	if swap < 0 || swap >= len(features) {
		return features, nil
	}
	features[idx], features[swap] = features[swap], features[idx]

	features = renumber(features)
	if err := s.repo.UpsertFeatures(ctx, features); err != nil {
		return nil, err
	}
	return features, nil
}

func (s *Service) GetCalculator(ctx context.Context) (Calculator, bool, error) {
	calc, err := s.repo.GetCalculator(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Calculator{}, false, nil
		}
		return Calculator{}, false, err
	}
	return calc, true, nil
}

// SaveCalculator renumbers both nesting levels before persisting: services
// by their submitted order, and each service's options likewise.
func (s *Service) SaveCalculator(ctx context.Context, req SaveCalculatorRequest) (Calculator, error) {
	services := make([]CalculatorService, len(req.Services))
	copy(services, req.Services)
	sortCalculatorServices(services)
	services = renumber(services)
	for i := range services {
		options := services[i].Options
		sortCalculatorOptions(options)
		services[i].Options = renumber(options)
	}

	calc := Calculator{
		ID:          calculatorDocID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		BasePrice:   req.BasePrice,
		Services:    services,
	}
	if err := s.repo.SaveCalculator(ctx, calc); err != nil {
		return Calculator{}, err
	}
	return calc, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
