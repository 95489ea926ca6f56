package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/kmalkov/cbr_rates_app/internal/apperrors"
	"github.com/kmalkov/cbr_rates_app/internal/core/domain"
	portsrepo "github.com/kmalkov/cbr_rates_app/internal/core/ports/repositories"
)

// RateService provides the read-only query surface over the rate snapshot.
type RateService struct {
	rateRepo portsrepo.RateReader
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo portsrepo.RateReader) *RateService {
	return &RateService{rateRepo: rateRepo}
}

// ListRates returns every rate for the most recent date in the store.
func (s *RateService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	rates, err := s.rateRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	return rates, nil
}

// GetRateByNumCode returns a rate by its ISO numeric code.
func (s *RateService) GetRateByNumCode(ctx context.Context, numCode string) (*domain.Rate, error) {
	if numCode == "" {
		return nil, fmt.Errorf("%w: numeric code must not be empty", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.GetByNumCode(ctx, numCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate by numeric code %s: %w", numCode, err)
	}
	return rate, nil
}

// GetRateByCharCode returns a rate by its 3-letter ISO alpha code. The input
// is upper-cased here so the store only ever sees canonical codes; anything
// that is not exactly 3 letters is rejected before the store is queried.
func (s *RateService) GetRateByCharCode(ctx context.Context, charCode string) (*domain.Rate, error) {
	code := strings.ToUpper(charCode)
	if !isAlphaCode(code) {
		return nil, fmt.Errorf("%w: alpha code must be 3 letters", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.GetByCharCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate by alpha code %s: %w", code, err)
	}
	return rate, nil
}

func isAlphaCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
