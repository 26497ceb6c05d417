package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"kicks/internal/api"
	"kicks/internal/domain"
)

// SneakerResolver отдаёт товар каталога по id; реализуется CatalogStore
type SneakerResolver interface {
	SneakerByID(id int64) (domain.Sneaker, bool)
}

// ItemDetails позиция корзины вместе с разрешённым товаром каталога.
// Sneaker равен nil, если товар больше не находится в каталоге.
type ItemDetails struct {
	domain.CartItem
	Sneaker *domain.Sneaker
}

// CartStore хранит позиции корзины. Инвариант: не больше одной позиции
// на пару (sneakerId, size) — поддерживается слиянием в AddToCart.
type CartStore struct {
	mu      sync.RWMutex
	client  api.Client
	catalog SneakerResolver
	log     *zap.Logger

	items   []domain.CartItem
	loading bool
	err     string
}

func NewCartStore(client api.Client, catalog SneakerResolver, log *zap.Logger) *CartStore {
	return &CartStore{client: client, catalog: catalog, log: log}
}

// FetchCartItems загружает корзину целиком, замещая локальное состояние
func (s *CartStore) FetchCartItems(ctx context.Context) error {
	s.begin()
	list, err := s.client.ListCartItems(ctx)
	if err != nil {
		s.fail("fetch cart", err)
		return err
	}
	s.mu.Lock()
	s.items = list
	s.loading = false
	s.mu.Unlock()
	return nil
}

// AddToCart добавляет товар в корзину. Если вариант (sneakerId, size)
// уже есть, количества складываются через PATCH существующей позиции,
// иначе создаётся новая. Локальная копия замещается ответом сервера.
func (s *CartStore) AddToCart(ctx context.Context, sneakerID int64, size, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidInput
	}
	s.begin()

	existing, found := s.findVariant(sneakerID, size)
	if found {
		q := existing.Quantity + quantity
		updated, err := s.client.UpdateCartItem(ctx, existing.ID, api.CartItemPatch{Quantity: &q})
		if err != nil {
			s.fail("add to cart", err)
			return err
		}
		s.replaceItem(*updated)
	} else {
		created, err := s.client.CreateCartItem(ctx, domain.CartItem{
			SneakerID: sneakerID,
			Size:      size,
			Quantity:  quantity,
		})
		if err != nil {
			s.fail("add to cart", err)
			return err
		}
		s.mu.Lock()
		s.items = append(s.items, *created)
		s.mu.Unlock()
	}

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	return nil
}

// UpdateQuantity меняет количество позиции. Ноль и меньше означают
// удаление: нулевое количество никогда не сохраняется. Неизвестный id
// игнорируется без ошибки.
func (s *CartStore) UpdateQuantity(ctx context.Context, itemID int64, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, itemID)
	}
	s.begin()

	if _, found := s.findItem(itemID); !found {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return nil
	}
	updated, err := s.client.UpdateCartItem(ctx, itemID, api.CartItemPatch{Quantity: &quantity})
	if err != nil {
		s.fail("update quantity", err)
		return err
	}
	s.replaceItem(*updated)

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	return nil
}

// RemoveFromCart удаляет позицию сначала на бэкенде, затем локально.
// Идемпотентна: отсутствующая на бэкенде позиция считается удалённой.
func (s *CartStore) RemoveFromCart(ctx context.Context, itemID int64) error {
	s.begin()
	if err := s.client.DeleteCartItem(ctx, itemID); err != nil && !errors.Is(err, api.ErrNotFound) {
		s.fail("remove from cart", err)
		return err
	}
	s.mu.Lock()
	s.items = removeByID(s.items, itemID)
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Clear удаляет все позиции параллельно, по одному DELETE на позицию.
// Локально убираются ровно те позиции, чьё удаление на бэкенде прошло
// (404 считается успехом). При частичном сбое возвращается первая
// ошибка, а локальное состояние сходится с фактическим серверным.
func (s *CartStore) Clear(ctx context.Context) error {
	s.begin()

	items := s.Items()
	deleted := make([]bool, len(items))
	var g errgroup.Group
	for i, it := range items {
		i, it := i, it
		g.Go(func() error {
			if err := s.client.DeleteCartItem(ctx, it.ID); err != nil && !errors.Is(err, api.ErrNotFound) {
				return fmt.Errorf("delete cart item %d: %w", it.ID, err)
			}
			deleted[i] = true
			return nil
		})
	}
	err := g.Wait()

	gone := make(map[int64]bool, len(items))
	for i, it := range items {
		if deleted[i] {
			gone[it.ID] = true
		}
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if !gone[it.ID] {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.loading = false
	if err != nil {
		s.err = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Error("clear cart failed", zap.Error(err))
	}
	return err
}

// Items копия текущих позиций корзины
func (s *CartStore) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemsCount суммарное количество единиц по всем позициям
func (s *CartStore) ItemsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := 0
	for _, it := range s.items {
		sum += it.Quantity
	}
	return sum
}

// TotalAmount сумма корзины по текущим ценам каталога. Позиция,
// чей товар не разрешается, вносит 0.
func (s *CartStore) TotalAmount() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0.0
	for _, it := range s.items {
		if sn, ok := s.catalog.SneakerByID(it.SneakerID); ok {
			total += sn.Price * float64(it.Quantity)
		}
	}
	return total
}

// ItemsWithDetails позиции корзины, обогащённые товарами каталога
func (s *CartStore) ItemsWithDetails() []ItemDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ItemDetails, 0, len(s.items))
	for _, it := range s.items {
		d := ItemDetails{CartItem: it}
		if sn, ok := s.catalog.SneakerByID(it.SneakerID); ok {
			cp := sn
			d.Sneaker = &cp
		}
		out = append(out, d)
	}
	return out
}

func (s *CartStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *CartStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *CartStore) findVariant(sneakerID int64, size int) (domain.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.SneakerID == sneakerID && it.Size == size {
			return it, true
		}
	}
	return domain.CartItem{}, false
}

func (s *CartStore) findItem(itemID int64) (domain.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == itemID {
			return it, true
		}
	}
	return domain.CartItem{}, false
}

func (s *CartStore) replaceItem(item domain.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return
		}
	}
	s.items = append(s.items, item)
}

func removeByID(items []domain.CartItem, id int64) []domain.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func (s *CartStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *CartStore) fail(action string, err error) {
	s.mu.Lock()
	s.err = err.Error()
	s.loading = false
	s.mu.Unlock()
	s.log.Error(action+" failed", zap.Error(err))
}
