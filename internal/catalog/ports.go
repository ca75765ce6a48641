package catalog

import (
	"context"

	"boutique/internal/domain"
)

type Service interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, query string, category domain.Category) ([]domain.Product, error)
}

type Repository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type SearchUseCase interface {
	SearchProducts(ctx context.Context, query string, category domain.Category) (*SearchProductsResponse, error)
}
