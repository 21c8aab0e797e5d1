// storeapi/types.go
package storeapi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Page is a paginated listing as the backend emits it: a total count, opaque
// next/previous page URLs, and the current page of results.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// User is the account profile.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	DateJoined  time.Time `json:"date_joined"`
}

// Tokens is the credential pair as the auth endpoints return it.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthSession is the login/register response: the account plus its tokens.
type AuthSession struct {
	User   User   `json:"user"`
	Tokens Tokens `json:"tokens"`
}

// Category is a product category; Parent is nil for top-level categories.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Parent      *string `json:"parent"`
}

// Brand is a product brand.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Logo string `json:"logo,omitempty"`
}

// ProductImage is one image of a product's gallery.
type ProductImage struct {
	ID        string `json:"id"`
	Image     string `json:"image"`
	AltText   string `json:"alt_text,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

// ProductVariant is a purchasable variation (size, color) of a product.
type ProductVariant struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Value           string          `json:"value"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	Stock           int             `json:"stock"`
}

// Product is a catalog entry. Money fields arrive as decimal strings.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	Category      *Category        `json:"category,omitempty"`
	Brand         *Brand           `json:"brand,omitempty"`
	Stock         int              `json:"stock"`
	IsAvailable   bool             `json:"is_available"`
	Rating        float64          `json:"rating,omitempty"`
	Images        []ProductImage   `json:"images,omitempty"`
	Variants      []ProductVariant `json:"variants,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// CartItem is one line of a cart.
type CartItem struct {
	ID         string          `json:"id"`
	Product    Product         `json:"product"`
	Variant    *ProductVariant `json:"variant"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Cart is the account's active cart.
type Cart struct {
	ID             string          `json:"id"`
	Items          []CartItem      `json:"items"`
	Coupon         *Coupon         `json:"coupon"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalPrice     decimal.Decimal `json:"total_price"`
}

// OrderItem is one line of a placed order, priced at purchase time.
type OrderItem struct {
	ID         string          `json:"id"`
	Product    Product         `json:"product"`
	Variant    *ProductVariant `json:"variant"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Order is a placed order.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	Status          string          `json:"status"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	ShippingCost    decimal.Decimal `json:"shipping_cost"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress string          `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Payment is a payment attempt against an order.
type Payment struct {
	ID            string          `json:"id"`
	Order         string          `json:"order"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Review is a product review.
type Review struct {
	ID        string    `json:"id"`
	Product   string    `json:"product"`
	User      User      `json:"user"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Coupon is a discount code.
type Coupon struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	ValidFrom     time.Time       `json:"valid_from"`
	ValidTo       time.Time       `json:"valid_to"`
	IsActive      bool            `json:"is_active"`
}

// Wishlist is the account's saved products.
type Wishlist struct {
	ID       string    `json:"id"`
	Products []Product `json:"products"`
}
