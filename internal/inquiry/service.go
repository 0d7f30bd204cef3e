package inquiry

import (
	"context"
	"errors"
	"strings"
	"time"

	"zenith-backend/internal/mailer"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("inquiry not found")

type Service struct {
	repo     Repository
	mailer   *mailer.Mailer
	location *time.Location
}

func NewService(repo Repository, m *mailer.Mailer, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		mailer:   m,
		location: location,
	}
}

// Create stores a visitor submission; new inquiries always start in the
// "new" status.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Inquiry, error) {
	inq := Inquiry{
		ID:          primitive.NewObjectID().Hex(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		InquiryType: strings.TrimSpace(req.InquiryType),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
		Timestamp:   time.Now().In(s.location),
		Status:      StatusNew,
	}

	if err := s.repo.Create(ctx, inq); err != nil {
		return Inquiry{}, err
	}
	return inq, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int64) ([]Inquiry, int64, error) {
	return s.repo.List(ctx, ListFilter{
		Name:   strings.TrimSpace(filter.Name),
		Type:   strings.TrimSpace(filter.Type),
		Status: strings.TrimSpace(filter.Status),
	}, limit, offset)
}

func (s *Service) SetStatus(ctx context.Context, id, status string) (Inquiry, error) {
	updated, err := s.repo.SetStatus(ctx, strings.TrimSpace(id), status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Inquiry{}, ErrNotFound
		}
		return Inquiry{}, err
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

// Reply emails the submitter and, on success, marks the inquiry resolved.
// A failed status write after a sent email is reported but not rolled back;
// the reply already left the building.
func (s *Service) Reply(ctx context.Context, id string, req ReplyRequest) (Inquiry, string, error) {
	inq, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Inquiry{}, "", ErrNotFound
		}
		return Inquiry{}, "", err
	}

	messageID, err := s.mailer.Send(ctx, inq.Email, strings.TrimSpace(req.Subject), req.Message)
	if err != nil {
		return Inquiry{}, "", err
	}

	updated, err := s.repo.SetStatus(ctx, inq.ID, StatusResolved)
	if err != nil {
		return inq, messageID, err
	}
	return updated, messageID, nil
}
