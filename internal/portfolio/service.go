package portfolio

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("portfolio item not found")

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Item, error) {
	now := time.Now().In(s.location)
	item := Item{
		ID:           primitive.NewObjectID().Hex(),
		Title:        strings.TrimSpace(req.Title),
		Category:     strings.TrimSpace(req.Category),
		Description:  strings.TrimSpace(req.Description),
		ImageURL:     strings.TrimSpace(req.ImageURL),
		Overview:     strings.TrimSpace(req.Overview),
		Client:       strings.TrimSpace(req.Client),
		Highlights:   trimAll(req.Highlights),
		Technologies: trimAll(req.Technologies),
		Metrics:      req.Metrics,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (Item, error) {
	set := bson.M{
		"title":        strings.TrimSpace(req.Title),
		"category":     strings.TrimSpace(req.Category),
		"description":  strings.TrimSpace(req.Description),
		"imageUrl":     strings.TrimSpace(req.ImageURL),
		"overview":     strings.TrimSpace(req.Overview),
		"client":       strings.TrimSpace(req.Client),
		"highlights":   trimAll(req.Highlights),
		"technologies": trimAll(req.Technologies),
		"metrics":      req.Metrics,
		"updatedAt":    time.Now().In(s.location),
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Item, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	return s.repo.List(ctx, filter)
}

func (s *Service) ListIDs(ctx context.Context) ([]string, error) {
	return s.repo.ListIDs(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Item, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return item, nil
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
