package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"kicks/internal/api"
	"kicks/internal/config"
	"kicks/internal/domain"
	"kicks/internal/storage"
	"kicks/internal/store"
)

// Небольшая демонстрация слоя состояния витрины против работающего
// бэкенда (см. cmd/mockapi): загрузка каталога, фильтрация, корзина,
// оформление заказа.
func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	client := api.NewHTTPClient(cfg.APIBaseURL)
	catalog := store.NewCatalogStore(client, logger)
	reviews := store.NewReviewStore(client, logger)
	cart := store.NewCartStore(client, catalog, logger)
	orders := store.NewOrderStore(client, cart, catalog, logger)

	history, err := store.NewHistoryStore(storage.NewFileKV(cfg.HistoryDir), logger)
	if err != nil && !errors.Is(err, storage.ErrCorrupt) {
		log.Fatalf("view history: %v", err)
	}
	if err != nil {
		logger.Warn("view history reset", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := catalog.FetchSneakers(ctx); err != nil {
		log.Fatalf("fetch sneakers: %v", err)
	}
	fmt.Printf("catalog: %d sneakers, brands: %v\n", len(catalog.Sneakers()), catalog.Brands())

	catalog.ToggleCategory("running")
	page := catalog.PaginatedSneakers()
	fmt.Printf("running, page %d/%d:\n", catalog.Page(), catalog.TotalPages())
	for _, sn := range page {
		fmt.Printf("  #%d %s %s — %.2f (avg %.1f)\n", sn.ID, sn.Brand, sn.Name, sn.Price, reviews.AverageRating(sn.ID))
	}
	if len(page) == 0 {
		return
	}

	pick := page[0]
	if sn := catalog.FetchSneakerByID(ctx, pick.ID); sn != nil {
		if err := history.Add(sn.ID); err != nil {
			logger.Warn("history add failed", zap.Error(err))
		}
	}
	fmt.Printf("recently viewed: %v\n", history.IDs())

	if err := cart.AddToCart(ctx, pick.ID, pick.Sizes[0], 2); err != nil {
		log.Fatalf("add to cart: %v", err)
	}
	fmt.Printf("cart: %d items, total %.2f\n", cart.ItemsCount(), cart.TotalAmount())

	order := orders.CreateOrder(ctx, domain.Customer{
		Name:    "Demo User",
		Email:   "demo@example.com",
		Address: "1 Main St",
		City:    "Springfield",
		Zip:     "00001",
	})
	if order == nil {
		log.Fatalf("create order: %s", orders.Err())
	}
	fmt.Printf("order %s placed, total %.2f, cart now %d items\n", order.ID, order.TotalAmount, cart.ItemsCount())
}
