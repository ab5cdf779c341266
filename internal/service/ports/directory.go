package ports

import (
	"context"

	"github.com/martacruzz/tqs-hw1/internal/domain"
)

type MunicipalityDirectory interface {
	IsValid(ctx context.Context, code string) bool
	List(ctx context.Context) []domain.MunicipalityRef
}
