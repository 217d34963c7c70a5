package service

import (
	"context"
	"log/slog"

	"github.com/vqle/catalog-service/internal/core/domain"
	"github.com/vqle/catalog-service/internal/core/validation"
	"github.com/vqle/catalog-service/internal/port"
)

// CatalogService covers the non-transactional catalog operations: search,
// maintenance, and mutation validation. Reads only ever see committed state.
type CatalogService struct {
	repo  port.DatabaseRepository
	cache port.CacheRepository
	log   *slog.Logger
}

func NewCatalogService(repo port.DatabaseRepository, cache port.CacheRepository, log *slog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, log: log}
}

func (s *CatalogService) SearchProducts(ctx context.Context, filters domain.SearchFilters) ([]domain.Product, error) {
	products, err := s.repo.SearchProducts(ctx, filters)
	if err != nil {
		s.log.Error("product search failed", "err", err)
		return nil, domain.NewUnavailable("product search failed")
	}
	return products, nil
}

// ValidateProductMutation exposes the validation layer to catalog
// maintenance callers without touching storage.
func (s *CatalogService) ValidateProductMutation(m domain.ProductMutation) []domain.Violation {
	return validation.ValidateProduct(m)
}

// UpsertProduct validates and writes a catalog entry. Stock set here is the
// maintenance path; the reservation workflow only ever decrements. A stock
// change must also refresh the admission gate mirror, otherwise a stale
// mirror keeps rejecting submissions after a restock.
func (s *CatalogService) UpsertProduct(ctx context.Context, m domain.ProductMutation) error {
	if violations := validation.ValidateProduct(m); len(violations) > 0 {
		return domain.NewValidation(violations)
	}
	if err := s.repo.UpsertProduct(ctx, m); err != nil {
		s.log.Error("product upsert failed", "product_id", m.ID, "err", err)
		return domain.NewUnavailable("product write failed")
	}
	if m.Stock != nil {
		if err := s.cache.SetStock(ctx, m.ID, *m.Stock); err != nil {
			s.log.Warn("stock gate refresh failed", "product_id", m.ID, "err", err)
		}
	}
	return nil
}
