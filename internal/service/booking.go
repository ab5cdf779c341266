package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/martacruzz/tqs-hw1/internal/domain"
	"github.com/martacruzz/tqs-hw1/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// maxBookingHorizon limits how far ahead a collection can be scheduled.
const maxBookingHorizon = 14 * 24 * time.Hour

const maxDescriptionLen = 500

type BookingService struct {
	repo      ports.BookingRepo
	directory ports.MunicipalityDirectory
	tokens    ports.TokenSource
	logger    logger.Logger
}

func NewBookingService(
	repo ports.BookingRepo,
	directory ports.MunicipalityDirectory,
	tokens ports.TokenSource,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:      repo,
		directory: directory,
		tokens:    tokens,
		logger:    logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	slot, err := domain.ParseTimeSlot(input.TimeSlot)
	if err != nil {
		return nil, &domain.FieldError{Field: "time_slot", Msg: "must be MORNING, AFTERNOON or EVENING"}
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ContactInfo:    input.ContactInfo,
		Address:        input.Address,
		Municipality:   strings.ToUpper(input.Municipality),
		CollectionDate: input.CollectionDate,
		TimeSlot:       slot,
		Description:    input.Description,
		Status:         domain.StatusReceived,
		History:        []domain.StatusChange{{Status: domain.StatusReceived, Timestamp: now}},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// collisions are astronomically unlikely but still handled: one
	// retry with a fresh token, then surface a conflict
	for attempt := 0; attempt < 2; attempt++ {
		booking.Token, err = s.tokens.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate token: %w", err)
		}

		err = s.repo.Create(ctx, booking)
		if err == nil {
			s.logger.Info("booking created",
				logger.String("token", booking.Token),
				logger.String("municipality", booking.Municipality),
				logger.String("slot", string(booking.TimeSlot)),
			)
			return booking, nil
		}
		if !errors.Is(err, domain.ErrTokenTaken) {
			return nil, fmt.Errorf("create booking: %w", err)
		}
	}

	return nil, fmt.Errorf("%w: token collision retry exhausted", domain.ErrConflict)
}

func (s *BookingService) GetByToken(ctx context.Context, token string) (*domain.Booking, error) {
	return s.repo.GetByToken(ctx, token)
}

// Cancel moves a booking to CANCELLED; the repo rejects the move when the
// booking already reached a terminal state.
func (s *BookingService) Cancel(ctx context.Context, token string) (*domain.Booking, error) {
	booking, err := s.repo.Transition(ctx, token, domain.StatusCancelled)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled",
		logger.String("token", booking.Token),
	)

	return booking, nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, token string, target domain.Status) (*domain.Booking, error) {
	booking, err := s.repo.Transition(ctx, token, target)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking status updated",
		logger.String("token", booking.Token),
		logger.String("status", string(booking.Status)),
	)

	return booking, nil
}

// List returns bookings in creation order, optionally narrowed by a
// case-insensitive substring match on municipality or status.
func (s *BookingService) List(ctx context.Context, filter string) ([]*domain.Booking, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	if filter == "" {
		return all, nil
	}

	needle := strings.ToLower(filter)
	var res []*domain.Booking
	for _, b := range all {
		if strings.Contains(strings.ToLower(b.Municipality), needle) ||
			strings.Contains(strings.ToLower(string(b.Status)), needle) {
			res = append(res, b)
		}
	}

	return res, nil
}

func (s *BookingService) ListByMunicipalityAndDate(ctx context.Context, municipality string, date time.Time) ([]*domain.Booking, error) {
	return s.repo.ListByMunicipalityAndDate(ctx, strings.ToUpper(municipality), date)
}

func (s *BookingService) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Booking, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *BookingService) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	if end.Before(start) {
		return nil, &domain.FieldError{Field: "to", Msg: "must not be before from"}
	}
	return s.repo.ListByDateRange(ctx, start, end)
}

func (s *BookingService) Municipalities(ctx context.Context) []domain.MunicipalityRef {
	return s.directory.List(ctx)
}

func (s *BookingService) validate(ctx context.Context, input domain.CreateBookingInput) error {
	if strings.TrimSpace(input.ContactInfo) == "" {
		return &domain.FieldError{Field: "contact_info", Msg: "is required"}
	}
	if strings.TrimSpace(input.Address) == "" {
		return &domain.FieldError{Field: "address", Msg: "is required"}
	}
	if strings.TrimSpace(input.Description) == "" {
		return &domain.FieldError{Field: "description", Msg: "is required"}
	}
	if utf8.RuneCountInString(input.Description) > maxDescriptionLen {
		return &domain.FieldError{Field: "description", Msg: "cannot exceed 500 characters"}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if input.CollectionDate.Before(today) {
		return &domain.FieldError{Field: "collection_date", Msg: "cannot be in the past"}
	}
	if input.CollectionDate.After(today.Add(maxBookingHorizon)) {
		return &domain.FieldError{Field: "collection_date", Msg: "can only be booked up to 14 days ahead"}
	}

	if !s.directory.IsValid(ctx, input.Municipality) {
		return &domain.FieldError{Field: "municipality", Msg: "unknown municipality code"}
	}

	return nil
}
