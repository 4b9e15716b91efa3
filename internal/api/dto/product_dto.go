package dto

import "github.com/pawtopia/petshop-api/internal/domain"

// ProductRequest payload for creating or replacing a catalog item.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
}

// ProductResponse is the catalog item view.
type ProductResponse struct {
	ID           int64   `json:"productId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	QuantitySold int     `json:"quantitySold"`
	Image        string  `json:"image"`
}

// NewProductResponse maps a product to its response view.
func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Type:         p.Type,
		Price:        p.Price,
		Quantity:     p.Quantity,
		QuantitySold: p.QuantitySold,
		Image:        p.Image,
	}
}
