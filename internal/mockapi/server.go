package mockapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kicks/internal/domain"
)

// Server gin-обёртка над Store, реализующая REST-поверхность бэкенда
// витрины: sneakers, reviews, cartItems, orders. Служит заменой
// настоящего бэкенда в тестах и при локальной разработке.
type Server struct {
	engine *gin.Engine
	store  *Store
}

func NewServer(store *Store) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	s := &Server{engine: r, store: store}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	s.engine.GET("/sneakers", s.listSneakers)
	s.engine.GET("/sneakers/:id", s.getSneaker)

	s.engine.GET("/reviews", s.listReviews)
	s.engine.POST("/reviews", s.createReview)

	s.engine.GET("/cartItems", s.listCartItems)
	s.engine.POST("/cartItems", s.createCartItem)
	s.engine.PATCH("/cartItems/:id", s.updateCartItem)
	s.engine.DELETE("/cartItems/:id", s.deleteCartItem)

	s.engine.GET("/orders", s.listOrders)
	s.engine.POST("/orders", s.createOrder)
}

// Sneaker handlers

func (s *Server) listSneakers(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListSneakers(c.Query("brand"), c.Query("category")))
}

func (s *Server) getSneaker(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	sn, err := s.store.GetSneaker(id)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sn)
}

// Review handlers

func (s *Server) listReviews(c *gin.Context) {
	var sneakerID int64
	if v := c.Query("sneakerId"); v != "" {
		id, err := parseID(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sneakerId"})
			return
		}
		sneakerID = id
	}
	c.JSON(http.StatusOK, s.store.ListReviews(sneakerID))
}

func (s *Server) createReview(c *gin.Context) {
	var r domain.Review
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if r.SneakerID <= 0 || r.Rating < 1 || r.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review"})
		return
	}
	c.JSON(http.StatusCreated, s.store.AddReview(r))
}

// Cart handlers

func (s *Server) listCartItems(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListCartItems())
}

func (s *Server) createCartItem(c *gin.Context) {
	var it domain.CartItem
	if err := c.ShouldBindJSON(&it); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if it.SneakerID <= 0 || it.Size <= 0 || it.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item"})
		return
	}
	c.JSON(http.StatusCreated, s.store.AddCartItem(it))
}

type patchCartItemReq struct {
	Quantity *int `json:"quantity"`
	Size     *int `json:"size"`
}

func (s *Server) updateCartItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req patchCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.Quantity != nil && *req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}
	it, err := s.store.PatchCartItem(id, req.Quantity, req.Size)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, it)
}

func (s *Server) deleteCartItem(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.store.DeleteCartItem(id); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Order handlers

func (s *Server) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListOrders())
}

func (s *Server) createOrder(c *gin.Context) {
	var o domain.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if len(o.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order has no items"})
		return
	}
	c.JSON(http.StatusCreated, s.store.AddOrder(o))
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func mapErrorToStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
