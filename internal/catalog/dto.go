package catalog

import "boutique/internal/domain"

type ProductDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Variety  string `json:"variety"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
}

type SearchProductsResponse struct {
	Products []ProductDTO `json:"products"`
}

func ToProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID,
		Name:     p.Name,
		Category: string(p.Category),
		Variety:  p.Variety,
		Price:    p.Price,
		Image:    p.Image,
	}
}
