// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"log/slog"

	"etf_dashboard/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the persistence layer for the ETF catalogue.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
	UpsertBatch(ctx context.Context, symbols []entity.Symbol) error
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active symbols from the repository.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// ListActiveCodes returns the tickers of all active symbols.
func (u *SymbolUsecase) ListActiveCodes(ctx context.Context) ([]string, error) {
	return u.repo.ListActiveCodes(ctx)
}

// Categories maps each active ticker to its catalogue category.
func (u *SymbolUsecase) Categories(ctx context.Context) (map[string]string, error) {
	symbols, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(symbols))
	for _, s := range symbols {
		if s.Category != "" {
			out[s.Code] = s.Category
		}
	}
	return out, nil
}

// SeedDefaults makes sure every symbol of the default catalogue exists.
// It is idempotent and safe to run on every startup.
func (u *SymbolUsecase) SeedDefaults(ctx context.Context) error {
	if err := u.repo.UpsertBatch(ctx, entity.DefaultCatalogue); err != nil {
		return err
	}
	slog.Info("symbol catalogue seeded", "count", len(entity.DefaultCatalogue))
	return nil
}
