package store

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"kicks/internal/api"
	"kicks/internal/domain"
)

// ErrInvalidInput возвращается при некорректных аргументах действия
var ErrInvalidInput = errors.New("invalid input")

// ViewMode режим отображения каталога
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

const (
	// DefaultPerPage размер страницы каталога
	DefaultPerPage = 12
	// DefaultMaxPrice верхняя граница ценового фильтра по умолчанию
	DefaultMaxPrice = 100000
)

// Filters активные фильтры каталога. Все предикаты соединены по И.
type Filters struct {
	Search     string
	Brands     map[string]bool
	Categories map[string]bool
	PriceMin   float64
	PriceMax   float64
	Size       int // 0 — фильтр по размеру выключен
}

func defaultFilters() Filters {
	return Filters{
		Brands:     make(map[string]bool),
		Categories: make(map[string]bool),
		PriceMin:   0,
		PriceMax:   DefaultMaxPrice,
	}
}

func (f Filters) clone() Filters {
	cp := f
	cp.Brands = make(map[string]bool, len(f.Brands))
	for k, v := range f.Brands {
		cp.Brands[k] = v
	}
	cp.Categories = make(map[string]bool, len(f.Categories))
	for k, v := range f.Categories {
		cp.Categories[k] = v
	}
	return cp
}

// CatalogStore хранит коллекцию товаров и состояние фильтров/пагинации.
// Производные представления пересчитываются при каждом чтении.
type CatalogStore struct {
	mu     sync.RWMutex
	client api.Client
	log    *zap.Logger

	sneakers []domain.Sneaker
	current  *domain.Sneaker
	filters  Filters
	viewMode ViewMode
	page     int
	perPage  int
	loading  bool
	err      string
}

func NewCatalogStore(client api.Client, log *zap.Logger) *CatalogStore {
	return &CatalogStore{
		client:   client,
		log:      log,
		filters:  defaultFilters(),
		viewMode: ViewModeGrid,
		page:     1,
		perPage:  DefaultPerPage,
	}
}

// FetchSneakers загружает полную коллекцию, целиком замещая локальную.
// При ошибке прежняя коллекция остаётся нетронутой.
func (s *CatalogStore) FetchSneakers(ctx context.Context) error {
	s.begin()
	list, err := s.client.ListSneakers(ctx)
	if err != nil {
		s.fail("fetch sneakers", err)
		return err
	}
	s.mu.Lock()
	s.sneakers = list
	s.loading = false
	s.mu.Unlock()
	return nil
}

// FetchSneakerByID загружает один товар и делает его текущим.
// Основную коллекцию не трогает. При ошибке возвращает nil.
func (s *CatalogStore) FetchSneakerByID(ctx context.Context, id int64) *domain.Sneaker {
	s.begin()
	sn, err := s.client.GetSneaker(ctx, id)
	if err != nil {
		s.fail("fetch sneaker", err)
		return nil
	}
	s.mu.Lock()
	s.current = sn
	s.loading = false
	s.mu.Unlock()
	cp := *sn
	return &cp
}

// Filter mutators: each one resets pagination to the first page.

func (s *CatalogStore) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Search = query
	s.page = 1
}

func (s *CatalogStore) ToggleBrand(brand string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters.Brands[brand] {
		delete(s.filters.Brands, brand)
	} else {
		s.filters.Brands[brand] = true
	}
	s.page = 1
}

func (s *CatalogStore) ToggleCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters.Categories[category] {
		delete(s.filters.Categories, category)
	} else {
		s.filters.Categories[category] = true
	}
	s.page = 1
}

func (s *CatalogStore) SetPriceRange(min, max float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.PriceMin = min
	s.filters.PriceMax = max
	s.page = 1
}

func (s *CatalogStore) SetSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Size = size
	s.page = 1
}

func (s *CatalogStore) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = defaultFilters()
	s.page = 1
}

func (s *CatalogStore) SetViewMode(mode ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
}

func (s *CatalogStore) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = page
}

// Accessors

func (s *CatalogStore) Sneakers() []domain.Sneaker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Sneaker, len(s.sneakers))
	copy(out, s.sneakers)
	return out
}

// SneakerByID отдаёт товар из загруженной коллекции
func (s *CatalogStore) SneakerByID(id int64) (domain.Sneaker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sn := range s.sneakers {
		if sn.ID == id {
			return sn, true
		}
	}
	return domain.Sneaker{}, false
}

func (s *CatalogStore) Current() *domain.Sneaker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

func (s *CatalogStore) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters.clone()
}

func (s *CatalogStore) ViewMode() ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewMode
}

func (s *CatalogStore) Page() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

func (s *CatalogStore) PerPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.perPage
}

func (s *CatalogStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *CatalogStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// FilteredSneakers применяет активные фильтры к полной коллекции
func (s *CatalogStore) FilteredSneakers() []domain.Sneaker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterSneakers(s.sneakers, s.filters)
}

// PaginatedSneakers текущая страница отфильтрованной коллекции
func (s *CatalogStore) PaginatedSneakers() []domain.Sneaker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Paginate(FilterSneakers(s.sneakers, s.filters), s.page, s.perPage)
}

func (s *CatalogStore) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return TotalPages(len(FilterSneakers(s.sneakers, s.filters)), s.perPage)
}

// Brands все бренды полной (неотфильтрованной) коллекции по алфавиту
func (s *CatalogStore) Brands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return distinctSorted(s.sneakers, func(sn domain.Sneaker) string { return sn.Brand })
}

// Categories все категории полной коллекции по алфавиту
func (s *CatalogStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return distinctSorted(s.sneakers, func(sn domain.Sneaker) string { return sn.Category })
}

func (s *CatalogStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *CatalogStore) fail(action string, err error) {
	s.mu.Lock()
	s.err = err.Error()
	s.loading = false
	s.mu.Unlock()
	s.log.Error(action+" failed", zap.Error(err))
}

// FilterSneakers возвращает товары, проходящие все активные предикаты:
// подстрока (без учёта регистра) в имени или бренде, принадлежность
// выбранным брендам и категориям, ценовой диапазон включительно,
// наличие выбранного размера.
func FilterSneakers(list []domain.Sneaker, f Filters) []domain.Sneaker {
	query := strings.ToLower(f.Search)
	out := make([]domain.Sneaker, 0, len(list))
	for _, sn := range list {
		if query != "" &&
			!strings.Contains(strings.ToLower(sn.Name), query) &&
			!strings.Contains(strings.ToLower(sn.Brand), query) {
			continue
		}
		if len(f.Brands) > 0 && !f.Brands[sn.Brand] {
			continue
		}
		if len(f.Categories) > 0 && !f.Categories[sn.Category] {
			continue
		}
		if sn.Price < f.PriceMin || sn.Price > f.PriceMax {
			continue
		}
		if f.Size != 0 && !sn.HasSize(f.Size) {
			continue
		}
		out = append(out, sn)
	}
	return out
}

// Paginate возвращает непрерывный срез страницы page (нумерация с 1).
// За последней страницей возвращает пустой результат.
func Paginate(list []domain.Sneaker, page, perPage int) []domain.Sneaker {
	if page < 1 || perPage <= 0 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(list) {
		return nil
	}
	end := start + perPage
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// TotalPages число страниц, округлённое вверх; минимум 0
func TotalPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

func distinctSorted(list []domain.Sneaker, key func(domain.Sneaker) string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, sn := range list {
		k := key(sn)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
