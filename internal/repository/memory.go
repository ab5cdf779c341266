package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/martacruzz/tqs-hw1/internal/domain"
)

// MemoryBookingRepository keeps bookings in process memory. It backs the
// tests and the storage.mode=memory configuration; the mutex serializes
// check-and-apply so concurrent transitions on one token cannot interleave.
type MemoryBookingRepository struct {
	mu           sync.RWMutex
	bookings     map[string]*domain.Booking
	order        []string
	slotCapacity int
}

func NewMemoryBookingRepo(slotCapacity int) *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings:     make(map[string]*domain.Booking),
		slotCapacity: slotCapacity,
	}
}

func (r *MemoryBookingRepository) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[b.Token]; exists {
		return domain.ErrTokenTaken
	}

	active := 0
	for _, existing := range r.bookings {
		if existing.Municipality == b.Municipality &&
			existing.CollectionDate.Equal(b.CollectionDate) &&
			existing.TimeSlot == b.TimeSlot &&
			!existing.Status.Terminal() {
			active++
		}
	}
	if active >= r.slotCapacity {
		return domain.ErrSlotFull
	}

	r.bookings[b.Token] = clone(b)
	r.order = append(r.order, b.Token)

	return nil
}

func (r *MemoryBookingRepository) GetByToken(_ context.Context, token string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[token]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return clone(b), nil
}

func (r *MemoryBookingRepository) Transition(_ context.Context, token string, target domain.Status) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[token]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	if !b.Status.CanTransitionTo(target) {
		return nil, &domain.TransitionError{From: b.Status, To: target}
	}

	now := time.Now().UTC()
	b.Status = target
	b.UpdatedAt = now
	b.History = append(b.History, domain.StatusChange{Status: target, Timestamp: now})

	return clone(b), nil
}

func (r *MemoryBookingRepository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Booking, 0, len(r.order))
	for _, token := range r.order {
		res = append(res, clone(r.bookings[token]))
	}
	return res, nil
}

func (r *MemoryBookingRepository) ListByMunicipalityAndDate(ctx context.Context, municipality string, date time.Time) ([]*domain.Booking, error) {
	all, _ := r.List(ctx)

	var res []*domain.Booking
	for _, b := range all {
		if strings.EqualFold(b.Municipality, municipality) && b.CollectionDate.Equal(date) {
			res = append(res, b)
		}
	}
	return res, nil
}

func (r *MemoryBookingRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Booking, error) {
	all, _ := r.List(ctx)

	var res []*domain.Booking
	for _, b := range all {
		if b.Status == status {
			res = append(res, b)
		}
	}
	return res, nil
}

func (r *MemoryBookingRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	all, _ := r.List(ctx)

	var res []*domain.Booking
	for _, b := range all {
		if !b.CollectionDate.Before(start) && !b.CollectionDate.After(end) {
			res = append(res, b)
		}
	}
	return res, nil
}

func clone(b *domain.Booking) *domain.Booking {
	c := *b
	c.History = make([]domain.StatusChange, len(b.History))
	copy(c.History, b.History)
	return &c
}
