package blog

import (
	"context"
	"errors"
	"strings"
	"time"

	"zenith-backend/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound    = errors.New("blog post not found")
	ErrSlugExists  = errors.New("slug already exists")
	ErrInvalidSlug = errors.New("invalid slug")
)

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

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Post, error) {
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return Post{}, ErrInvalidSlug
	}

	now := time.Now().In(s.location)
	post := Post{
		ID:          primitive.NewObjectID().Hex(),
		Slug:        slug,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Tag:         strings.TrimSpace(req.Tag),
		Image:       strings.TrimSpace(req.Image),
		Date:        dateOrToday(req.Date, now),
		ReadTime:    strings.TrimSpace(req.ReadTime),
		Featured:    req.Featured != nil && *req.Featured,
		Status:      req.Status,
		Content:     normalizeContent(req.Content),
		Author:      normalizeAuthor(req.Author, now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Post{}, ErrSlugExists
		}
		return Post{}, err
	}
	return post, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (Post, error) {
	id = strings.TrimSpace(id)
	slug := normalizeSlug(req.Slug, req.Title)
	if slug == "" {
		return Post{}, ErrInvalidSlug
	}

	now := time.Now().In(s.location)
	set := bson.M{
		"slug":        slug,
		"title":       strings.TrimSpace(req.Title),
		"description": strings.TrimSpace(req.Description),
		"tag":         strings.TrimSpace(req.Tag),
		"image":       strings.TrimSpace(req.Image),
		"date":        dateOrToday(req.Date, now),
		"readTime":    strings.TrimSpace(req.ReadTime),
		"featured":    req.Featured != nil && *req.Featured,
		"status":      req.Status,
		"content":     normalizeContent(req.Content),
		"author":      normalizeAuthor(req.Author, now),
		"updatedAt":   now,
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Post{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return Post{}, ErrSlugExists
		}
		return Post{}, err
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

func (s *Service) ListPublished(ctx context.Context) ([]Post, error) {
	return s.repo.ListPublished(ctx)
}

func (s *Service) ListSlugs(ctx context.Context) ([]SlugEntry, error) {
	return s.repo.ListSlugs(ctx)
}

func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (Post, error) {
	post, err := s.repo.GetPublishedBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Post{}, ErrNotFound
		}
		return Post{}, err
	}
	return post, nil
}

func (s *Service) ListAdmin(ctx context.Context, filter AdminListFilter, limit, offset int64) ([]Post, int64, error) {
	filter.Status = strings.TrimSpace(filter.Status)
	filter.Tag = strings.TrimSpace(filter.Tag)
	posts, err := s.repo.ListAdmin(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountAdmin(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func normalizeSlug(slug, title string) string {
	raw := strings.TrimSpace(slug)
	if raw == "" {
		raw = strings.TrimSpace(title)
	}
	return utils.Slugify(raw)
}

func dateOrToday(date string, now time.Time) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return now.Format("2006-01-02")
	}
	return date
}

func normalizeContent(c Content) Content {
	c.Introduction = strings.TrimSpace(c.Introduction)
	c.Conclusion = strings.TrimSpace(c.Conclusion)
	c.Quote.Text = strings.TrimSpace(c.Quote.Text)
	c.Quote.Attribution = strings.TrimSpace(c.Quote.Attribution)
	sections := make([]Section, 0, len(c.Sections))
	for _, sec := range c.Sections {
		sec.Heading = strings.TrimSpace(sec.Heading)
		sec.Body = strings.TrimSpace(sec.Body)
		if sec.Heading == "" && sec.Body == "" {
			continue
		}
		sections = append(sections, sec)
	}
	c.Sections = sections
	return c
}

func normalizeAuthor(a Author, now time.Time) Author {
	a.Name = strings.TrimSpace(a.Name)
	a.Role = strings.TrimSpace(a.Role)
	a.Avatar = strings.TrimSpace(a.Avatar)
	a.UpdatedAt = now
	return a
}
