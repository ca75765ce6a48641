package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique/internal/domain"
	apperrors "boutique/internal/errors"
)

type mockRepository struct {
	FindAllFunc func(ctx context.Context) ([]domain.Product, error)
}

func (m *mockRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return m.FindAllFunc(ctx)
}

func fixedRepository() *mockRepository {
	return &mockRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: "1", Name: "Royal Velvet Sherwani", Category: domain.CategorySherwani, Variety: "Embroidered Velvet", Price: 24999},
				{ID: "2", Name: "Classic Silk Sherwani", Category: domain.CategorySherwani, Variety: "Pure Silk", Price: 18500},
				{ID: "6", Name: "Tussar Silk Kurta", Category: domain.CategoryKurtaPajama, Variety: "Festive Wear", Price: 5499},
				{ID: "9", Name: "Imperial Bandhgala", Category: domain.CategoryJodhpuri, Variety: "Royal Cut", Price: 15999},
			}, nil
		},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	svc := NewService(fixedRepository())

	tests := []struct {
		name     string
		query    string
		category domain.Category
		want     []string
	}{
		{name: "everything", want: []string{"1", "2", "6", "9"}},
		{name: "all category", category: CategoryAll, want: []string{"1", "2", "6", "9"}},
		{name: "name match ignores case", query: "SILK", want: []string{"2", "6"}},
		{name: "variety match", query: "royal cut", want: []string{"9"}},
		{name: "category filter", category: domain.CategorySherwani, want: []string{"1", "2"}},
		{name: "query and category", query: "silk", category: domain.CategoryKurtaPajama, want: []string{"6"}},
		{name: "no match", query: "tuxedo", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := svc.Search(context.Background(), tt.query, tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(products))
		})
	}
}

func TestFindByID(t *testing.T) {
	svc := NewService(fixedRepository())

	p, err := svc.FindByID(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, "Imperial Bandhgala", p.Name)

	_, err = svc.FindByID(context.Background(), "404")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestService_RepositoryError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&mockRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Product, error) { return nil, boom },
	})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = svc.Search(context.Background(), "", "")
	assert.ErrorIs(t, err, boom)
	_, err = svc.FindByID(context.Background(), "1")
	assert.ErrorIs(t, err, boom)
}
