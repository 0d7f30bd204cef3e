package stats

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("stat not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// PublicList falls back to the built-in band when the collection is empty.
func (s *Service) PublicList(ctx context.Context) ([]Stat, error) {
	stats, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return DefaultStats(), nil
	}
	return stats, nil
}

// AdminList seeds the defaults into an empty collection before returning.
func (s *Service) AdminList(ctx context.Context) ([]Stat, error) {
	stats, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(stats) > 0 {
		return stats, nil
	}

	defaults := DefaultStats()
	if err := s.repo.UpsertAll(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}

// SaveAll persists the full band: unknown icon and color keys are silently
// replaced by the defaults, the list is sorted by the submitted order and
// renumbered contiguously from 1.
func (s *Service) SaveAll(ctx context.Context, inputs []StatInput) ([]Stat, error) {
	stats := make([]Stat, 0, len(inputs))
	for _, in := range inputs {
		id := strings.TrimSpace(in.ID)
		if id == "" {
			id = primitive.NewObjectID().Hex()
		}
		stats = append(stats, Stat{
			ID:     id,
			Icon:   normalizeIcon(strings.TrimSpace(in.Icon)),
			Value:  in.Value,
			Label:  strings.TrimSpace(in.Label),
			Color:  normalizeColor(strings.TrimSpace(in.Color)),
			Suffix: strings.TrimSpace(in.Suffix),
			Order:  in.Order,
		})
	}

	sortStats(stats)
	stats = renumber(stats)

	if err := s.repo.UpsertAll(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Service) Delete(ctx context.Context, id string) ([]Stat, error) {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, ErrNotFound
	}

	remaining, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	remaining = renumber(remaining)
	if err := s.repo.UpsertAll(ctx, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}

func (s *Service) Move(ctx context.Context, id, direction string) ([]Stat, error) {
	stats, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, stat := range stats {
		if stat.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	swap := idx - 1
	if direction == "down" {
		swap = idx + 1
	}
	if swap < 0 || swap >= len(stats) {
		return stats, nil
	}
	stats[idx], stats[swap] = stats[swap], stats[idx]

	stats = renumber(stats)
	if err := s.repo.UpsertAll(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}
