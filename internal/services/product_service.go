// internal/services/product_service.go
package services

import (
	"fmt"

	"github.com/javajoker/atelier-backend/internal/models"
	"github.com/javajoker/atelier-backend/internal/store"
)

// ProductService manages the product catalog document. Every call reads
// the collection from disk, so the service holds no catalog state.
type ProductService struct {
	docs *store.DocumentStore
}

type CreateProductRequest struct {
	Name          string `json:"name"`
	NameFa        string `json:"nameFa"`
	Description   string `json:"description"`
	DescriptionFa string `json:"descriptionFa"`
	Price         string `json:"price"`
	Image         string `json:"image"`
	Featured      bool   `json:"featured"`
	Category      string `json:"category,omitempty" validate:"category"`
}

type UpdateProductRequest struct {
	ID int `json:"id"`
	CreateProductRequest
}

func (r *CreateProductRequest) ToProduct() models.Product {
	return models.Product{
		Name:          r.Name,
		NameFa:        r.NameFa,
		Description:   r.Description,
		DescriptionFa: r.DescriptionFa,
		Price:         r.Price,
		Image:         r.Image,
		Featured:      r.Featured,
		Category:      models.ProductCategory(r.Category),
	}
}

func (r *UpdateProductRequest) ToProduct() models.Product {
	product := r.CreateProductRequest.ToProduct()
	product.ID = r.ID
	return product
}

func NewProductService(docs *store.DocumentStore) *ProductService {
	return &ProductService{docs: docs}
}

// ListProducts returns the catalog in stored order.
func (s *ProductService) ListProducts() ([]models.Product, error) {
	return s.load()
}

// FilterProducts returns the products matching filter, keeping stored order.
func (s *ProductService) FilterProducts(filter models.ProductFilter) ([]models.Product, error) {
	products, err := s.load()
	if err != nil || filter.IsZero() {
		return products, err
	}

	matched := make([]models.Product, 0, len(products))
	for _, product := range products {
		if filter.Match(product) {
			matched = append(matched, product)
		}
	}
	return matched, nil
}

func (s *ProductService) GetProduct(id int) (*models.Product, error) {
	products, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product %d: %w", id, store.ErrNotFound)
}

// CreateProduct assigns the next id (highest existing id plus one, or 1)
// and appends the product. Ids are never reused after deletion as long as
// a higher id survives; the draft's own id is ignored.
func (s *ProductService) CreateProduct(draft models.Product) (*models.Product, error) {
	var created models.Product

	err := s.docs.Mutate(models.CollectionProducts, func() error {
		products, err := s.load()
		if err != nil {
			return err
		}

		maxID := 0
		for _, product := range products {
			if product.ID > maxID {
				maxID = product.ID
			}
		}

		created = draft
		created.ID = maxID + 1
		products = append(products, created)

		return s.docs.Store(models.CollectionProducts, products)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateProduct replaces the product with the same id in place.
func (s *ProductService) UpdateProduct(product models.Product) (*models.Product, error) {
	err := s.docs.Mutate(models.CollectionProducts, func() error {
		products, err := s.load()
		if err != nil {
			return err
		}

		index := -1
		for i := range products {
			if products[i].ID == product.ID {
				index = i
				break
			}
		}
		if index == -1 {
			return fmt.Errorf("product %d: %w", product.ID, store.ErrNotFound)
		}

		products[index] = product
		return s.docs.Store(models.CollectionProducts, products)
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// DeleteProduct removes the product with id. Deleting an absent id still
// rewrites the (unchanged) collection and is not an error.
func (s *ProductService) DeleteProduct(id int) error {
	return s.docs.Mutate(models.CollectionProducts, func() error {
		products, err := s.load()
		if err != nil {
			return err
		}

		filtered := make([]models.Product, 0, len(products))
		for _, product := range products {
			if product.ID != id {
				filtered = append(filtered, product)
			}
		}

		return s.docs.Store(models.CollectionProducts, filtered)
	})
}

func (s *ProductService) load() ([]models.Product, error) {
	var products []models.Product
	if err := s.docs.Load(models.CollectionProducts, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}
