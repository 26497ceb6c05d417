package mockapi

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"kicks/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// Store объединённое in-memory хранилище мок-бэкенда и простой
// генератор числовых id. Заказам выдаются uuid.
type Store struct {
	mu          sync.RWMutex
	nextSneaker int64
	nextReview  int64
	nextCart    int64
	sneakers    map[int64]domain.Sneaker
	reviews     map[int64]domain.Review
	cartItems   map[int64]domain.CartItem
	orders      map[string]domain.Order
	orderIDs    []string // порядок создания
}

func NewStore() *Store {
	return &Store{
		nextSneaker: 1,
		nextReview:  1,
		nextCart:    1,
		sneakers:    make(map[int64]domain.Sneaker),
		reviews:     make(map[int64]domain.Review),
		cartItems:   make(map[int64]domain.CartItem),
		orders:      make(map[string]domain.Order),
	}
}

func (s *Store) AddSneaker(sn domain.Sneaker) domain.Sneaker {
	s.mu.Lock()
	defer s.mu.Unlock()
	sn.ID = s.nextSneaker
	s.nextSneaker++
	s.sneakers[sn.ID] = sn
	return sn
}

func (s *Store) ListSneakers(brand, category string) []domain.Sneaker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Sneaker, 0, len(s.sneakers))
	for _, sn := range s.sneakers {
		if brand != "" && sn.Brand != brand {
			continue
		}
		if category != "" && sn.Category != category {
			continue
		}
		out = append(out, sn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) GetSneaker(id int64) (domain.Sneaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sn, ok := s.sneakers[id]
	if !ok {
		return domain.Sneaker{}, ErrNotFound
	}
	return sn, nil
}

func (s *Store) AddReview(r domain.Review) domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextReview
	s.nextReview++
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	s.reviews[r.ID] = r
	return r
}

// ListReviews отдаёт отзывы товара; sneakerID == 0 означает все
func (s *Store) ListReviews(sneakerID int64) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, 0)
	for _, r := range s.reviews {
		if sneakerID != 0 && r.SneakerID != sneakerID {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) ListCartItems() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartItem, 0, len(s.cartItems))
	for _, it := range s.cartItems {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) AddCartItem(it domain.CartItem) domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	it.ID = s.nextCart
	s.nextCart++
	s.cartItems[it.ID] = it
	return it
}

// PatchCartItem применяет частичное обновление к существующей позиции
func (s *Store) PatchCartItem(id int64, quantity *int, size *int) (domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.cartItems[id]
	if !ok {
		return domain.CartItem{}, ErrNotFound
	}
	if quantity != nil {
		it.Quantity = *quantity
	}
	if size != nil {
		it.Size = *size
	}
	s.cartItems[id] = it
	return it, nil
}

func (s *Store) DeleteCartItem(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cartItems[id]; !ok {
		return ErrNotFound
	}
	delete(s.cartItems, id)
	return nil
}

func (s *Store) ListOrders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		out = append(out, s.orders[id])
	}
	return out
}

func (s *Store) AddOrder(o domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = uuid.NewString()
	if o.Status == "" {
		o.Status = domain.OrderStatusPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	s.orders[o.ID] = o
	s.orderIDs = append(s.orderIDs, o.ID)
	return o
}
