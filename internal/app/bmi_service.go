// Package app holds the application services and business logic.
package app

import (
	"context"
	"fmt"
	"time"

	"bmicalc/internal/domain"
)

// Observer is notified about completed calculations and history changes.
type Observer interface {
	Calculated(rec domain.CalculationRecord)
	HistorySize(n int)
}

type nopObserver struct{}

func (nopObserver) Calculated(domain.CalculationRecord) {}
func (nopObserver) HistorySize(int)                     {}

// BMIService encapsulates the calculate and history use cases.
type BMIService struct {
	repo domain.HistoryRepository
	obs  Observer
	now  func() time.Time
}

// NewBMIService creates a BMIService backed by the given repository.
func NewBMIService(repo domain.HistoryRepository) *BMIService {
	return &BMIService{repo: repo, obs: nopObserver{}, now: time.Now}
}

// WithObserver sets the observer notified by the service and returns s.
func (s *BMIService) WithObserver(obs Observer) *BMIService {
	if obs == nil {
		obs = nopObserver{}
	}
	s.obs = obs
	return s
}

// Calculate validates the raw inputs, computes the BMI and appends the result
// to the history. Nothing is stored when validation fails.
func (s *BMIService) Calculate(ctx context.Context, weight, height domain.RawValue) (domain.CalculationRecord, error) {
	m, err := domain.Validate(weight, height)
	if err != nil {
		return domain.CalculationRecord{}, err
	}

	rec, err := s.repo.Append(ctx, domain.NewRecord(m, s.now()))
	if err != nil {
		return domain.CalculationRecord{}, fmt.Errorf("append calculation: %w", err)
	}
	s.obs.Calculated(rec)
	s.reportSize(ctx)
	return rec, nil
}

// History returns every stored calculation in insertion order.
func (s *BMIService) History(ctx context.Context) ([]domain.CalculationRecord, error) {
	return s.repo.List(ctx)
}

// Get returns a single calculation by id.
func (s *BMIService) Get(ctx context.Context, id int64) (domain.CalculationRecord, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes a single calculation and returns it.
func (s *BMIService) Delete(ctx context.Context, id int64) (domain.CalculationRecord, error) {
	rec, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.CalculationRecord{}, err
	}
	s.reportSize(ctx)
	return rec, nil
}

// Clear removes every calculation, resets id assignment and returns how many
// were removed.
func (s *BMIService) Clear(ctx context.Context) (int, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	s.obs.HistorySize(0)
	return n, nil
}

// Statistics returns aggregate figures over the history.
func (s *BMIService) Statistics(ctx context.Context) (domain.Statistics, error) {
	return s.repo.Statistics(ctx)
}

// Count returns the number of stored calculations.
func (s *BMIService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *BMIService) reportSize(ctx context.Context) {
	if n, err := s.repo.Count(ctx); err == nil {
		s.obs.HistorySize(n)
	}
}
