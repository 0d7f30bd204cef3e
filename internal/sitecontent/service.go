package sitecontent

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrLogoNotFound = errors.New("partner logo not found")

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

func (s *Service) ListLogos(ctx context.Context) ([]PartnerLogo, error) {
	return s.repo.ListLogos(ctx)
}

func (s *Service) AddLogo(ctx context.Context, req LogoRequest) (PartnerLogo, error) {
	logo := PartnerLogo{
		ID:        primitive.NewObjectID().Hex(),
		Name:      strings.TrimSpace(req.Name),
		Image:     strings.TrimSpace(req.Image),
		CreatedAt: time.Now().In(s.location),
	}

	if err := s.repo.CreateLogo(ctx, logo); err != nil {
		return PartnerLogo{}, err
	}
	return logo, nil
}

func (s *Service) DeleteLogo(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteLogo(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrLogoNotFound
	}
	return nil
}

// GetHero returns the configured hero background, lazily creating the
// default one the first time it is asked for.
func (s *Service) GetHero(ctx context.Context) (HeroBackground, error) {
	hero, err := s.repo.GetHero(ctx)
	if err == nil {
		return hero, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return HeroBackground{}, err
	}

	hero = HeroBackground{
		Type:      HeroTypeDefault,
		Value:     "",
		UpdatedAt: time.Now().In(s.location),
	}
	if err := s.repo.SaveHero(ctx, hero); err != nil {
		return HeroBackground{}, err
	}
	return s.repo.GetHero(ctx)
}

func (s *Service) UpdateHero(ctx context.Context, req HeroRequest) (HeroBackground, error) {
	value := strings.TrimSpace(req.Value)
	if req.Type == HeroTypeDefault {
		value = ""
	}

	hero := HeroBackground{
		Type:      req.Type,
		Value:     value,
		UpdatedAt: time.Now().In(s.location),
	}
	if err := s.repo.SaveHero(ctx, hero); err != nil {
		return HeroBackground{}, err
	}
	return s.repo.GetHero(ctx)
}
