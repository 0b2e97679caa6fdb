package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"twototango/internal/domain"
)

const maxInterestNameLen = 50

var (
	// scriptBlockRegexp drops script/style elements with their content;
	// htmlTagRegexp strips any remaining markup; dangerousCharRegexp removes
	// characters that could survive into markup contexts downstream.
	scriptBlockRegexp   = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)\s*>`)
	htmlTagRegexp       = regexp.MustCompile(`<[^>]*>`)
	dangerousCharRegexp = regexp.MustCompile(`[<>"'&]`)
)

// sanitizeName strips HTML and dangerous characters from a label name.
// Applied on write and again on read, in case of legacy unsanitized rows.
func sanitizeName(name string) string {
	name = scriptBlockRegexp.ReplaceAllString(name, "")
	name = htmlTagRegexp.ReplaceAllString(name, "")
	name = dangerousCharRegexp.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

type interestService struct {
	interestRepo domain.InterestRepository
}

// NewInterestService creates an InterestService backed by the given repository.
func NewInterestService(interestRepo domain.InterestRepository) domain.InterestService {
	return &interestService{interestRepo: interestRepo}
}

func (s *interestService) Create(ctx context.Context, name string) (*domain.Interest, error) {
	sanitized := sanitizeName(name)
	if sanitized == "" || len(sanitized) > maxInterestNameLen {
		return nil, domain.ErrInvalidInput
	}

	interest := &domain.Interest{Name: sanitized}
	if err := s.interestRepo.Create(ctx, interest); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("create interest: %w", err)
	}
	return interest, nil
}

func (s *interestService) List(ctx context.Context) ([]*domain.Interest, error) {
	interests, err := s.interestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	for _, interest := range interests {
		interest.Name = sanitizeName(interest.Name)
	}
	return interests, nil
}

func (s *interestService) GetByID(ctx context.Context, id string) (*domain.Interest, error) {
	interest, err := s.interestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get interest: %w", err)
	}
	interest.Name = sanitizeName(interest.Name)
	return interest, nil
}
