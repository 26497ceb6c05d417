package api

import (
	"context"
	"errors"

	"kicks/internal/domain"
)

// ErrNotFound возвращается, когда сущность отсутствует на бэкенде
var ErrNotFound = errors.New("not found")

// CartItemPatch частичное обновление позиции корзины (PATCH)
type CartItemPatch struct {
	Quantity *int `json:"quantity,omitempty"`
}

// Client описывает REST-поверхность бэкенда витрины.
// HTTPClient реализует этот интерфейс.
type Client interface {
	ListSneakers(ctx context.Context) ([]domain.Sneaker, error)
	GetSneaker(ctx context.Context, id int64) (*domain.Sneaker, error)

	ListReviews(ctx context.Context, sneakerID int64) ([]domain.Review, error)
	CreateReview(ctx context.Context, r domain.Review) (*domain.Review, error)

	ListCartItems(ctx context.Context) ([]domain.CartItem, error)
	CreateCartItem(ctx context.Context, item domain.CartItem) (*domain.CartItem, error)
	UpdateCartItem(ctx context.Context, id int64, patch CartItemPatch) (*domain.CartItem, error)
	DeleteCartItem(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, o domain.Order) (*domain.Order, error)
}
