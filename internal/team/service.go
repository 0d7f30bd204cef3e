package team

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("team member not found")

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

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Member, error) {
	now := time.Now().In(s.location)
	member := Member{
		ID:         primitive.NewObjectID().Hex(),
		Name:       strings.TrimSpace(req.Name),
		Image:      strings.TrimSpace(req.Image),
		Role:       strings.TrimSpace(req.Role),
		Bio:        strings.TrimSpace(req.Bio),
		LinkedIn:   strings.TrimSpace(req.LinkedIn),
		ParentRole: strings.TrimSpace(req.ParentRole),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return Member{}, err
	}
	return member, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (Member, error) {
	set := bson.M{
		"name":       strings.TrimSpace(req.Name),
		"image":      strings.TrimSpace(req.Image),
		"role":       strings.TrimSpace(req.Role),
		"bio":        strings.TrimSpace(req.Bio),
		"linkedin":   strings.TrimSpace(req.LinkedIn),
		"parentRole": strings.TrimSpace(req.ParentRole),
		"updatedAt":  time.Now().In(s.location),
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Member{}, ErrNotFound
		}
		return Member{}, err
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

func (s *Service) List(ctx context.Context) ([]Member, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Member, error) {
	member, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Member{}, ErrNotFound
		}
		return Member{}, err
	}
	return member, nil
}
