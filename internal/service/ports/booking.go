package ports

import (
	"context"
	"time"

	"github.com/martacruzz/tqs-hw1/internal/domain"
)

type BookingRepo interface {
	// Create persists a new booking together with its initial history
	// entry. Returns domain.ErrTokenTaken on a token collision and
	// domain.ErrSlotFull when the per-slot capacity is exhausted.
	Create(ctx context.Context, b *domain.Booking) error

	GetByToken(ctx context.Context, token string) (*domain.Booking, error)

	// Transition atomically checks the state machine and applies the
	// move: status update and history append happen together or not at
	// all. Concurrent transitions on the same token are serialized.
	Transition(ctx context.Context, token string, target domain.Status) (*domain.Booking, error)

	List(ctx context.Context) ([]*domain.Booking, error)
	ListByMunicipalityAndDate(ctx context.Context, municipality string, date time.Time) ([]*domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Booking, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}
