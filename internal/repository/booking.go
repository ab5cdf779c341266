package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/martacruzz/tqs-hw1/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db           *dbpg.DB
	strategy     retry.Strategy
	slotCapacity int
}

func NewBookingRepo(db *dbpg.DB, slotCapacity int) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		slotCapacity: slotCapacity,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Serialize creates per slot: count-then-insert would otherwise let
	// two concurrent transactions both observe capacity-1 and both
	// commit. There is no parent row to lock, so an advisory lock keyed
	// on (municipality, date, slot) stands in for one.
	slotKey := fmt.Sprintf("%s|%s|%s", b.Municipality, b.CollectionDate.Format("2006-01-02"), b.TimeSlot)
	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, slotKey); err != nil {
		return fmt.Errorf("lock slot: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM bookings
				   WHERE municipality = $1 AND collection_date = $2 AND time_slot = $3
				     AND status = ANY($4)`
	var active int
	if err = tx.QueryRowContext(
		ctx, countQuery, b.Municipality, b.CollectionDate, b.TimeSlot,
		pq.Array(domain.ActiveStatuses),
	).Scan(&active); err != nil {
		return fmt.Errorf("count slot bookings: %w", err)
	}

	if active >= r.slotCapacity {
		return domain.ErrSlotFull
	}

	query := `INSERT INTO bookings (token, contact_info, address, municipality,
				collection_date, time_slot, description, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query, b.Token, b.ContactInfo, b.Address, b.Municipality,
		b.CollectionDate, b.TimeSlot, b.Description, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrTokenTaken
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	historyQuery := `INSERT INTO booking_status_history (token, status, ts)
					 VALUES ($1, $2, $3)`
	if _, err = tx.ExecContext(ctx, historyQuery, b.Token, b.Status, b.CreatedAt); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByToken(ctx context.Context, token string) (*domain.Booking, error) {
	query := `SELECT token, contact_info, address, municipality, collection_date,
					 time_slot, description, status, created_at, updated_at
			  FROM bookings
			  WHERE token = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, token)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.Token, &b.ContactInfo, &b.Address, &b.Municipality, &b.CollectionDate,
		&b.TimeSlot, &b.Description, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	history, err := r.loadHistory(ctx, token)
	if err != nil {
		return nil, err
	}
	b.History = history

	return &b, nil
}

// Transition locks the booking row, validates the move against the state
// machine and applies status update plus history append in one transaction.
func (r *BookingRepository) Transition(ctx context.Context, token string, target domain.Status) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var b domain.Booking
	lockQuery := `SELECT token, contact_info, address, municipality, collection_date,
						 time_slot, description, status, created_at, updated_at
				  FROM bookings
				  WHERE token = $1
				  FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, token).Scan(
		&b.Token, &b.ContactInfo, &b.Address, &b.Municipality, &b.CollectionDate,
		&b.TimeSlot, &b.Description, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	if !b.Status.CanTransitionTo(target) {
		return nil, &domain.TransitionError{From: b.Status, To: target}
	}

	now := time.Now().UTC()

	updateQuery := `UPDATE bookings SET status = $2, updated_at = $3 WHERE token = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, token, target, now); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	historyQuery := `INSERT INTO booking_status_history (token, status, ts)
					 VALUES ($1, $2, $3)`
	if _, err = tx.ExecContext(ctx, historyQuery, token, target, now); err != nil {
		return nil, fmt.Errorf("insert history: %w", err)
	}

	historyRows, err := tx.QueryContext(
		ctx,
		`SELECT status, ts FROM booking_status_history WHERE token = $1 ORDER BY ts ASC, id ASC`,
		token,
	)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	history, err := scanHistory(historyRows)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transition: %w", err)
	}

	b.Status = target
	b.UpdatedAt = now
	b.History = history

	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT token, contact_info, address, municipality, collection_date,
					 time_slot, description, status, created_at, updated_at
			  FROM bookings
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return r.collect(ctx, rows)
}

func (r *BookingRepository) ListByMunicipalityAndDate(ctx context.Context, municipality string, date time.Time) ([]*domain.Booking, error) {
	query := `SELECT token, contact_info, address, municipality, collection_date,
					 time_slot, description, status, created_at, updated_at
			  FROM bookings
			  WHERE municipality = $1 AND collection_date = $2
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, municipality, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings by municipality: %w", err)
	}
	return r.collect(ctx, rows)
}

func (r *BookingRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Booking, error) {
	query := `SELECT token, contact_info, address, municipality, collection_date,
					 time_slot, description, status, created_at, updated_at
			  FROM bookings
			  WHERE status = $1
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, status)
	if err != nil {
		return nil, fmt.Errorf("list bookings by status: %w", err)
	}
	return r.collect(ctx, rows)
}

func (r *BookingRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	query := `SELECT token, contact_info, address, municipality, collection_date,
					 time_slot, description, status, created_at, updated_at
			  FROM bookings
			  WHERE collection_date BETWEEN $1 AND $2
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list bookings by date range: %w", err)
	}
	return r.collect(ctx, rows)
}

func (r *BookingRepository) loadHistory(ctx context.Context, token string) ([]domain.StatusChange, error) {
	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy,
		`SELECT status, ts FROM booking_status_history WHERE token = $1 ORDER BY ts ASC, id ASC`,
		token,
	)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return scanHistory(rows)
}

func (r *BookingRepository) collect(ctx context.Context, rows *sql.Rows) ([]*domain.Booking, error) {
	defer rows.Close()

	var res []*domain.Booking
	tokens := make([]string, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.Token, &b.ContactInfo, &b.Address, &b.Municipality, &b.CollectionDate,
			&b.TimeSlot, &b.Description, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
		tokens = append(tokens, b.Token)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(res) == 0 {
		return res, nil
	}

	histRows, err := r.db.QueryWithRetry(
		ctx, r.strategy,
		`SELECT token, status, ts FROM booking_status_history
		 WHERE token = ANY($1) ORDER BY ts ASC, id ASC`,
		pq.Array(tokens),
	)
	if err != nil {
		return nil, fmt.Errorf("load histories: %w", err)
	}
	defer histRows.Close()

	byToken := make(map[string][]domain.StatusChange, len(res))
	for histRows.Next() {
		var tok string
		var change domain.StatusChange
		if err = histRows.Scan(&tok, &change.Status, &change.Timestamp); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		byToken[tok] = append(byToken[tok], change)
	}
	if err = histRows.Err(); err != nil {
		return nil, err
	}

	for _, b := range res {
		b.History = byToken[b.Token]
	}

	return res, nil
}

func scanHistory(rows *sql.Rows) ([]domain.StatusChange, error) {
	defer rows.Close()

	var history []domain.StatusChange
	for rows.Next() {
		var change domain.StatusChange
		if err := rows.Scan(&change.Status, &change.Timestamp); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		history = append(history, change)
	}
	return history, rows.Err()
}
