package entity

import "time"

// Product is a catalog product as served by the backend.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Images      []string  `json:"images,omitempty"`
	Stock       int       `json:"stock"`
	Sold        int       `json:"sold"`
	CategoryID  string    `json:"categoryId"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InStock reports whether the product can still be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Category is a catalog category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Comment is a shopper review attached to a product.
type Comment struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
