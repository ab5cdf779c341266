package municipality

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/martacruzz/tqs-hw1/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// fallback is served until the first successful upstream refresh, so
// bookings keep working when the reference API is down at startup.
var fallback = []domain.MunicipalityRef{
	{Code: "LIS", Name: "Lisboa"},
	{Code: "PORTO", Name: "Porto"},
	{Code: "ALMADA", Name: "Almada"},
	{Code: "AVEIRO", Name: "Aveiro"},
	{Code: "BRAGA", Name: "Braga"},
	{Code: "COIMBRA", Name: "Coimbra"},
	{Code: "FARO", Name: "Faro"},
	{Code: "SETUBAL", Name: "Setúbal"},
}

type namesFetcher interface {
	FetchNames(ctx context.Context) ([]string, error)
}

// Directory is the read-only municipality reference consulted at booking
// creation. Entries are cached for a TTL and refreshed lazily on access
// (plus periodically by the scheduler).
type Directory struct {
	client namesFetcher
	ttl    time.Duration
	logger logger.Logger

	mu      sync.RWMutex
	refs    []domain.MunicipalityRef
	expires time.Time
}

func NewDirectory(client namesFetcher, ttl time.Duration, log logger.Logger) *Directory {
	return &Directory{
		client: client,
		ttl:    ttl,
		logger: log,
		refs:   fallback,
	}
}

// Refresh fetches the upstream list and replaces the cached entries.
// On failure the previous entries (or the built-in fallback) stay in place.
func (d *Directory) Refresh(ctx context.Context) error {
	names, err := d.client.FetchNames(ctx)
	if err != nil {
		return err
	}

	refs := make([]domain.MunicipalityRef, 0, len(names))
	for _, name := range names {
		refs = append(refs, domain.MunicipalityRef{
			Code: strings.ToUpper(name),
			Name: name,
		})
	}

	d.mu.Lock()
	d.refs = refs
	d.expires = time.Now().Add(d.ttl)
	d.mu.Unlock()

	d.logger.Info("municipality directory refreshed",
		logger.Int("count", len(refs)),
	)

	return nil
}

func (d *Directory) IsValid(ctx context.Context, code string) bool {
	if code == "" {
		return false
	}

	code = strings.ToUpper(code)
	for _, ref := range d.snapshot(ctx) {
		if ref.Code == code {
			return true
		}
	}
	return false
}

func (d *Directory) List(ctx context.Context) []domain.MunicipalityRef {
	refs := d.snapshot(ctx)
	out := make([]domain.MunicipalityRef, len(refs))
	copy(out, refs)
	return out
}

func (d *Directory) snapshot(ctx context.Context) []domain.MunicipalityRef {
	d.mu.RLock()
	stale := time.Now().After(d.expires)
	refs := d.refs
	d.mu.RUnlock()

	if !stale {
		return refs
	}

	if err := d.Refresh(ctx); err != nil {
		d.logger.Warn("municipality refresh failed, serving cached list",
			logger.String("error", err.Error()),
		)
		// push the next attempt out so a dead upstream is not hammered
		d.mu.Lock()
		d.expires = time.Now().Add(d.ttl / 10)
		refs = d.refs
		d.mu.Unlock()
		return refs
	}

	d.mu.RLock()
	refs = d.refs
	d.mu.RUnlock()
	return refs
}
