package payday

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payday
type Repository interface {
	AddPayday(ctx context.Context, date time.Time) error
	RemovePayday(ctx context.Context, date time.Time) error
	ListPaydays(ctx context.Context) ([]time.Time, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add marks date as a payday. Adding an existing payday succeeds.
func (s *Service) Add(ctx context.Context, date time.Time) error {
	return s.repo.AddPayday(ctx, normalize(date))
}

// Remove unmarks date. Removing a date that is not a payday succeeds.
func (s *Service) Remove(ctx context.Context, date time.Time) error {
	return s.repo.RemovePayday(ctx, normalize(date))
}

// List returns paydays in ascending order.
func (s *Service) List(ctx context.Context) ([]time.Time, error) {
	dates, err := s.repo.ListPaydays(ctx)
	if err != nil {
		return nil, err
	}

	return NewSet(dates...).Dates(), nil
}

func (s *Service) Set(ctx context.Context) (Set, error) {
	dates, err := s.repo.ListPaydays(ctx)
	if err != nil {
		return nil, err
	}

	return NewSet(dates...), nil
}

func normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
