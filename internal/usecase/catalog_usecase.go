package usecase

import (
	"context"
	"strings"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/domain/wizard"
	"contractor_estimates/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ICatalogUseCase serves a contractor's category catalog to the wizard.
type ICatalogUseCase interface {
	LoadCategories(ctx context.Context, contractorID string, excluded []string) ([]entities.Category, error)
	MatchCategories(ctx context.Context, contractorID, description string, excluded []string) ([]entities.Category, error)
}

type CatalogUseCase struct {
	repo   interfaces.ICategoryRepository
	logger *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICategoryRepository, logger *zap.Logger) *CatalogUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogUseCase{repo: repo, logger: logger}
}

// LoadCategories returns the catalog in stored order without the excluded ids.
func (u *CatalogUseCase) LoadCategories(ctx context.Context, contractorID string, excluded []string) ([]entities.Category, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return nil, ErrInvalidContractorID
	}
	all, err := u.repo.ListByContractorID(ctx, contractorID)
	if err != nil {
		u.logger.Error("[catalog][usecase] list categories failed", zap.String("contractor_id", contractorID), zap.Error(err))
		return nil, err
	}
	out := wizard.FilterExcluded(all, excluded)
	u.logger.Debug("[catalog][usecase] categories loaded",
		zap.String("contractor_id", contractorID), zap.Int("total", len(all)), zap.Int("offered", len(out)))
	return out, nil
}

// MatchCategories ranks the catalog against a free-text project description.
func (u *CatalogUseCase) MatchCategories(ctx context.Context, contractorID, description string, excluded []string) ([]entities.Category, error) {
	all, err := u.LoadCategories(ctx, contractorID, excluded)
	if err != nil {
		return nil, err
	}
	return wizard.MatchCategories(description, all, nil), nil
}
