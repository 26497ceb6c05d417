package api

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"kicks/internal/domain"
	"kicks/internal/mockapi"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupClient(t *testing.T) (*HTTPClient, *mockapi.Store) {
	t.Helper()
	store := mockapi.NewStore()
	srv := httptest.NewServer(mockapi.NewServer(store).Engine())
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL), store
}

func TestClient_Sneakers(t *testing.T) {
	c, store := setupClient(t)
	ctx := context.Background()
	a := store.AddSneaker(domain.Sneaker{Name: "Air Max 90", Brand: "Nike", Category: "lifestyle", Price: 130, Sizes: []int{42, 43}})
	store.AddSneaker(domain.Sneaker{Name: "Samba OG", Brand: "Adidas", Category: "lifestyle", Price: 100, Sizes: []int{41}})

	list, err := c.ListSneakers(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 sneakers, got %d", len(list))
	}

	got, err := c.GetSneaker(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Air Max 90" || got.Price != 130 {
		t.Fatalf("unexpected sneaker %+v", got)
	}

	if _, err := c.GetSneaker(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_Reviews(t *testing.T) {
	c, _ := setupClient(t)
	ctx := context.Background()

	created, err := c.CreateReview(ctx, domain.Review{SneakerID: 1, UserName: "ann", Rating: 5, Comment: "great"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected server-assigned id")
	}

	// validation is the backend's job; out-of-range rating is rejected there
	if _, err := c.CreateReview(ctx, domain.Review{SneakerID: 1, Rating: 9}); err == nil {
		t.Fatalf("expected validation error")
	}

	list, err := c.ListReviews(ctx, 1)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v (%d items)", err, len(list))
	}
	if list[0].ID != created.ID {
		t.Fatalf("unexpected review %+v", list[0])
	}
	if other, _ := c.ListReviews(ctx, 2); len(other) != 0 {
		t.Fatalf("sneakerId filter leaked: %+v", other)
	}
}

func TestClient_CartFlow(t *testing.T) {
	c, _ := setupClient(t)
	ctx := context.Background()

	created, err := c.CreateCartItem(ctx, domain.CartItem{SneakerID: 1, Size: 42, Quantity: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	q := 5
	updated, err := c.UpdateCartItem(ctx, created.ID, CartItemPatch{Quantity: &q})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if updated.Quantity != 5 || updated.Size != 42 {
		t.Fatalf("patch must merge, got %+v", updated)
	}

	list, err := c.ListCartItems(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v (%d items)", err, len(list))
	}

	if err := c.DeleteCartItem(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := c.DeleteCartItem(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestClient_Orders(t *testing.T) {
	c, _ := setupClient(t)
	ctx := context.Background()

	created, err := c.CreateOrder(ctx, domain.Order{
		Items:       []domain.OrderItem{{SneakerID: 1, Size: 42, Quantity: 2, Price: 100}},
		TotalAmount: 200,
		Status:      domain.OrderStatusPending,
		Customer:    domain.Customer{Name: "Ann"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected server-assigned order id")
	}

	list, err := c.ListOrders(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v (%d orders)", err, len(list))
	}
	if list[0].ID != created.ID || list[0].TotalAmount != 200 {
		t.Fatalf("unexpected order %+v", list[0])
	}
}

func TestClient_NetworkFailureIsWrapped(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1")
	if _, err := c.ListSneakers(context.Background()); err == nil {
		t.Fatalf("expected transport error")
	}
}
