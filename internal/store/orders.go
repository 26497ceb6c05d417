package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"kicks/internal/api"
	"kicks/internal/domain"
)

// CartSource операции корзины, нужные оформлению заказа; реализуется CartStore
type CartSource interface {
	Items() []domain.CartItem
	Clear(ctx context.Context) error
}

// OrderStore хранит историю заказов и оформляет новые из корзины
type OrderStore struct {
	mu      sync.RWMutex
	client  api.Client
	cart    CartSource
	catalog SneakerResolver
	log     *zap.Logger

	orders  []domain.Order
	loading bool
	err     string
}

func NewOrderStore(client api.Client, cart CartSource, catalog SneakerResolver, log *zap.Logger) *OrderStore {
	return &OrderStore{client: client, cart: cart, catalog: catalog, log: log}
}

// FetchOrders загружает историю заказов, замещая локальное состояние
func (s *OrderStore) FetchOrders(ctx context.Context) error {
	s.begin()
	list, err := s.client.ListOrders(ctx)
	if err != nil {
		s.fail("fetch orders", err)
		return err
	}
	s.mu.Lock()
	s.orders = list
	s.loading = false
	s.mu.Unlock()
	return nil
}

// CreateOrder собирает заказ из текущей корзины, фиксируя цены каталога
// на момент оформления, отправляет его и на успехе очищает корзину.
// При ошибке создания корзина остаётся нетронутой, возвращается nil.
// Сбой очистки после успешного создания не отменяет заказ: он пишется
// в состояние ошибки корзины, а заказ всё равно возвращается.
func (s *OrderStore) CreateOrder(ctx context.Context, customer domain.Customer) *domain.Order {
	s.begin()

	items := s.cart.Items()
	if len(items) == 0 {
		s.fail("create order", ErrInvalidInput)
		return nil
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	total := 0.0
	for _, it := range items {
		price := 0.0
		if sn, ok := s.catalog.SneakerByID(it.SneakerID); ok {
			price = sn.Price
		}
		orderItems = append(orderItems, domain.OrderItem{
			SneakerID: it.SneakerID,
			Size:      it.Size,
			Quantity:  it.Quantity,
			Price:     price,
		})
		total += price * float64(it.Quantity)
	}

	created, err := s.client.CreateOrder(ctx, domain.Order{
		Items:       orderItems,
		TotalAmount: total,
		Status:      domain.OrderStatusPending,
		Customer:    customer,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		s.fail("create order", err)
		return nil
	}

	s.mu.Lock()
	s.orders = append(s.orders, *created)
	s.loading = false
	s.mu.Unlock()

	if err := s.cart.Clear(ctx); err != nil {
		// Заказ уже размещён; состояние корзины разойдётся с бэкендом
		// до следующей успешной загрузки или очистки.
		s.log.Warn("order placed but cart clear failed",
			zap.String("order_id", created.ID), zap.Error(err))
	}
	return created
}

// Orders копия истории заказов
func (s *OrderStore) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *OrderStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *OrderStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *OrderStore) fail(action string, err error) {
	s.mu.Lock()
	s.err = err.Error()
	s.loading = false
	s.mu.Unlock()
	s.log.Error(action+" failed", zap.Error(err))
}
