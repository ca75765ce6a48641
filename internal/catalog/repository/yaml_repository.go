package repository

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"boutique/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

type productRecord struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Variety  string `yaml:"variety"`
	Price    int64  `yaml:"price"`
	Image    string `yaml:"image"`
}

// YAMLRepository serves a catalog decoded once from a YAML seed list.
type YAMLRepository struct {
	products []domain.Product
}

func NewDefaultRepository() (*YAMLRepository, error) {
	return NewYAMLRepository(defaultSeed)
}

func NewYAMLFileRepository(path string) (*YAMLRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return NewYAMLRepository(data)
}

func NewYAMLRepository(data []byte) (*YAMLRepository, error) {
	var records []productRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, r := range records {
		products = append(products, domain.Product{
			ID:       r.ID,
			Name:     r.Name,
			Category: domain.Category(r.Category),
			Variety:  r.Variety,
			Price:    r.Price,
			Image:    r.Image,
		})
	}

	return &YAMLRepository{products: products}, nil
}

func (r *YAMLRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}
