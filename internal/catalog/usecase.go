package catalog

import (
	"context"

	"boutique/internal/domain"
)

type searchUseCase struct {
	service Service
}

func NewSearchUseCase(service Service) SearchUseCase {
	return &searchUseCase{service: service}
}

func (uc *searchUseCase) SearchProducts(ctx context.Context, query string, category domain.Category) (*SearchProductsResponse, error) {
	found, err := uc.service.Search(ctx, query, category)
	if err != nil {
		return nil, err
	}

	products := make([]ProductDTO, 0, len(found))
	for _, p := range found {
		products = append(products, ToProductDTO(p))
	}

	return &SearchProductsResponse{Products: products}, nil
}
