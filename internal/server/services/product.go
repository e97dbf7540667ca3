package services

import "github.com/dmitrijs2005/expenzo/internal/server/models"

// ProductService serves the static product catalogue.
type ProductService struct {
	catalogue []models.Product
}

func NewProductService() *ProductService {
	return &ProductService{catalogue: []models.Product{
		{Name: "mobile", Price: 10000},
		{Name: "tv", Price: 20000},
	}}
}

// List returns a copy of the catalogue.
func (s *ProductService) List() []models.Product {
	out := make([]models.Product, len(s.catalogue))
	copy(out, s.catalogue)
	return out
}
