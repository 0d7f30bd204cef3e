package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("user not found")

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

func (s *Service) Create(ctx context.Context, req UpsertRequest) (User, error) {
	now := time.Now().In(s.location)
	user := User{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Role:      req.Role,
		Status:    req.Status,
		LastLogin: strings.TrimSpace(req.LastLogin),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (User, error) {
	set := bson.M{
		"name":      strings.TrimSpace(req.Name),
		"email":     strings.ToLower(strings.TrimSpace(req.Email)),
		"role":      req.Role,
		"status":    req.Status,
		"lastLogin": strings.TrimSpace(req.LastLogin),
		"updatedAt": time.Now().In(s.location),
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, err
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

// List fetches the whole directory and filters/paginates in memory. The
// directory is small enough that this mirrors how the admin page consumes it:
// one fetch, then search and filters applied over the full list.
func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]User, int64, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := Filter(all, ListFilter{
		Query:  strings.TrimSpace(filter.Query),
		Role:   strings.TrimSpace(filter.Role),
		Status: strings.TrimSpace(filter.Status),
	})
	page := Paginate(filtered, limit, offset)
	return page, int64(len(filtered)), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	user, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}
