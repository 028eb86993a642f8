package reports

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RecordInput struct {
	Filename    string
	Selector    string
	Date        string
	Format      string
	Rows        int
	GeneratedBy string
}

func (s *Service) Record(ctx context.Context, in RecordInput) (Report, error) {
	if strings.TrimSpace(in.Filename) == "" {
		return Report{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Selector) == "" || strings.TrimSpace(in.Format) == "" {
		return Report{}, ErrInvalidInput
	}
	if in.Rows < 0 {
		return Report{}, ErrInvalidInput
	}

	r := Report{
		ID:          uuid.NewString(),
		Filename:    strings.TrimSpace(in.Filename),
		Selector:    strings.TrimSpace(in.Selector),
		Date:        strings.TrimSpace(in.Date),
		Format:      strings.TrimSpace(in.Format),
		Rows:        in.Rows,
		GeneratedBy: strings.TrimSpace(in.GeneratedBy),
		GeneratedAt: s.now(),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Report{}, err
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]Report, error) {
	return s.repo.List(ctx, limit)
}
