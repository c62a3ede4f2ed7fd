// Package catalog holds the read-only chick breed and service
// catalogs the buyer screens render. Nothing here is ever mutated;
// the state store only consumes products through its cart operations.
package catalog

import (
	"github.com/young4chick/kukuhub/internal/state"
	pkgerrors "github.com/young4chick/kukuhub/pkg/errors"
)

// Category groups products on the order screen.
type Category struct {
	ID   string
	Name string
	Icon string
}

// Service is a professional offering listed on the services screen.
// Pricing is display text because several services are "from" prices.
type Service struct {
	ID          string
	Name        string
	Description string
	Price       string
	Icon        string
	Rating      float64
	Reviews     int
}

// Catalog serves the static product and service listings.
type Catalog struct {
	products   []state.Product
	categories []Category
	services   []Service
}

// New returns the catalog backed by the built-in listings.
func New() *Catalog {
	return &Catalog{
		products:   defaultProducts,
		categories: defaultCategories,
		services:   defaultServices,
	}
}

// Products returns every product, in listing order.
func (c *Catalog) Products() []state.Product {
	return copyProducts(c.products)
}

// ProductByID looks a product up by id.
func (c *Catalog) ProductByID(id string) (state.Product, error) {
	for _, product := range c.products {
		if product.ID == id {
			return product, nil
		}
	}
	return state.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

// ProductsByCategory filters the listing by category id.
func (c *Catalog) ProductsByCategory(categoryID string) []state.Product {
	var filtered []state.Product
	for _, product := range c.products {
		if product.Category == categoryID {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// Categories returns the category chips, in listing order.
func (c *Catalog) Categories() []Category {
	copied := make([]Category, len(c.categories))
	copy(copied, c.categories)
	return copied
}

// Services returns the service listings, in listing order.
func (c *Catalog) Services() []Service {
	copied := make([]Service, len(c.services))
	copy(copied, c.services)
	return copied
}

func copyProducts(products []state.Product) []state.Product {
	copied := make([]state.Product, len(products))
	copy(copied, products)
	return copied
}
