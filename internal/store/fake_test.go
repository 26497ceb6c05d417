package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"kicks/internal/api"
	"kicks/internal/domain"
)

// fakeBackend поведение бэкенда в памяти с точечным внедрением ошибок
type fakeBackend struct {
	mu           sync.Mutex
	sneakers     []domain.Sneaker
	reviews      []domain.Review
	nextReviewID int64
	cart         map[int64]domain.CartItem
	nextCartID   int64
	orders       []domain.Order
	nextOrderID  int

	listSneakersErr error
	createReviewErr error
	createOrderErr  error
	deleteErr       map[int64]error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		nextReviewID: 1,
		nextCartID:   1,
		nextOrderID:  1,
		cart:         make(map[int64]domain.CartItem),
		deleteErr:    make(map[int64]error),
	}
}

var _ api.Client = (*fakeBackend)(nil)

func (f *fakeBackend) ListSneakers(context.Context) ([]domain.Sneaker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listSneakersErr != nil {
		return nil, f.listSneakersErr
	}
	out := make([]domain.Sneaker, len(f.sneakers))
	copy(out, f.sneakers)
	return out, nil
}

func (f *fakeBackend) GetSneaker(_ context.Context, id int64) (*domain.Sneaker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, sn := range f.sneakers {
		if sn.ID == id {
			cp := sn
			return &cp, nil
		}
	}
	return nil, api.ErrNotFound
}

func (f *fakeBackend) ListReviews(_ context.Context, sneakerID int64) ([]domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Review, 0)
	for _, r := range f.reviews {
		if r.SneakerID == sneakerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBackend) CreateReview(_ context.Context, r domain.Review) (*domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createReviewErr != nil {
		return nil, f.createReviewErr
	}
	r.ID = f.nextReviewID
	f.nextReviewID++
	f.reviews = append(f.reviews, r)
	return &r, nil
}

func (f *fakeBackend) ListCartItems(context.Context) ([]domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.CartItem, 0, len(f.cart))
	for _, it := range f.cart {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBackend) CreateCartItem(_ context.Context, item domain.CartItem) (*domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item.ID = f.nextCartID
	f.nextCartID++
	f.cart[item.ID] = item
	return &item, nil
}

func (f *fakeBackend) UpdateCartItem(_ context.Context, id int64, patch api.CartItemPatch) (*domain.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.cart[id]
	if !ok {
		return nil, api.ErrNotFound
	}
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	f.cart[id] = it
	return &it, nil
}

func (f *fakeBackend) DeleteCartItem(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.deleteErr[id]; err != nil {
		return err
	}
	if _, ok := f.cart[id]; !ok {
		return api.ErrNotFound
	}
	delete(f.cart, id)
	return nil
}

func (f *fakeBackend) ListOrders(context.Context) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeBackend) CreateOrder(_ context.Context, o domain.Order) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createOrderErr != nil {
		return nil, f.createOrderErr
	}
	o.ID = fmt.Sprintf("ord-%d", f.nextOrderID)
	f.nextOrderID++
	f.orders = append(f.orders, o)
	return &o, nil
}

// staticCatalog фиксированный резолвер товаров для тестов корзины/заказов
type staticCatalog map[int64]domain.Sneaker

func (c staticCatalog) SneakerByID(id int64) (domain.Sneaker, bool) {
	sn, ok := c[id]
	return sn, ok
}
