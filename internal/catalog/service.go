package catalog

import (
	"context"
	"fmt"
	"strings"

	"boutique/internal/domain"
	apperrors "boutique/internal/errors"
)

// CategoryAll disables the category filter in Search.
const CategoryAll domain.Category = "All"

type catalogService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &catalogService{repo: repo}
}

func (s *catalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *catalogService) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with id %s not found", id))
}

// Search matches query case-insensitively against name or variety. An empty
// category or CategoryAll matches every category.
func (s *catalogService) Search(ctx context.Context, query string, category domain.Category) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matches := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Variety), q) {
			continue
		}
		matches = append(matches, p)
	}

	return matches, nil
}
