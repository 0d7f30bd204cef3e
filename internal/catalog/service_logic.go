package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("service not found")

type Logic struct {
	repo     Repository
	location *time.Location
}

func NewLogic(repo Repository, location *time.Location) *Logic {
	return &Logic{
		repo:     repo,
		location: location,
	}
}

func (l *Logic) Create(ctx context.Context, req UpsertRequest) (ServiceDetail, error) {
	now := time.Now().In(l.location)
	svc := Service{
		ID:              primitive.NewObjectID().Hex(),
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		Image:           strings.TrimSpace(req.Image),
		Video:           strings.TrimSpace(req.Video),
		Skills:          trimAll(req.Skills),
		Pillars:         normalizeSteps(req.Pillars),
		Approach:        normalizeSteps(req.Approach),
		PricingPackages: req.PricingPackages,
		Status:          req.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := l.repo.Create(ctx, svc); err != nil {
		return ServiceDetail{}, err
	}

	works, err := l.syncWorks(ctx, svc.ID, req.Works, now)
	if err != nil {
		return ServiceDetail{}, err
	}
	return ServiceDetail{Service: svc, Works: works}, nil
}

func (l *Logic) Update(ctx context.Context, id string, req UpsertRequest) (ServiceDetail, error) {
	id = strings.TrimSpace(id)
	now := time.Now().In(l.location)
	set := bson.M{
		"name":            strings.TrimSpace(req.Name),
		"description":     strings.TrimSpace(req.Description),
		"image":           strings.TrimSpace(req.Image),
		"video":           strings.TrimSpace(req.Video),
		"skills":          trimAll(req.Skills),
		"pillars":         normalizeSteps(req.Pillars),
		"approach":        normalizeSteps(req.Approach),
		"pricingPackages": req.PricingPackages,
		"status":          req.Status,
		"updatedAt":       now,
	}

	updated, err := l.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ServiceDetail{}, ErrNotFound
		}
		return ServiceDetail{}, err
	}

	works, err := l.syncWorks(ctx, id, req.Works, now)
	if err != nil {
		return ServiceDetail{}, err
	}
	return ServiceDetail{Service: updated, Works: works}, nil
}

// syncWorks reconciles the persisted works set against the submitted list and
// returns the resulting gallery.
func (l *Logic) syncWorks(ctx context.Context, serviceID string, submitted []WorkInput, now time.Time) ([]Work, error) {
	filtered := FilterWorks(submitted)

	existing, err := l.repo.ListWorks(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	existingIDs := make([]string, 0, len(existing))
	for _, w := range existing {
		existingIDs = append(existingIDs, w.ID)
	}

	diff := DiffWorks(existingIDs, filtered)
	if err := l.repo.ApplyWorksDiff(ctx, serviceID, diff, now); err != nil {
		return nil, err
	}

	return l.repo.ListWorks(ctx, serviceID)
}

func (l *Logic) Delete(ctx context.Context, id string) error {
	deleted, err := l.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (l *Logic) List(ctx context.Context, status string) ([]Service, error) {
	return l.repo.List(ctx, strings.TrimSpace(status))
}

func (l *Logic) GetDetail(ctx context.Context, id string) (ServiceDetail, error) {
	id = strings.TrimSpace(id)
	svc, err := l.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ServiceDetail{}, ErrNotFound
		}
		return ServiceDetail{}, err
	}
	works, err := l.repo.ListWorks(ctx, id)
	if err != nil {
		return ServiceDetail{}, err
	}
	return ServiceDetail{Service: svc, Works: works}, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

func normalizeSteps(steps []Step) []Step {
	out := make([]Step, 0, len(steps))
	for _, step := range steps {
		step.Title = strings.TrimSpace(step.Title)
		step.Content = strings.TrimSpace(step.Content)
		if step.Title == "" && step.Content == "" {
			continue
		}
		if step.ID == "" {
			step.ID = primitive.NewObjectID().Hex()
		}
		out = append(out, step)
	}
	return out
}
