package domain

import "time"

// Sneaker представляет товар каталога. Данными владеет бэкенд,
// клиент хранит их только для чтения.
type Sneaker struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Sizes    []int   `json:"sizes"`
}

// HasSize сообщает, продаётся ли модель в данном размере
func (s Sneaker) HasSize(size int) bool {
	for _, v := range s.Sizes {
		if v == size {
			return true
		}
	}
	return false
}

// Review отзыв о товаре. На клиенте только добавляется, никогда не меняется.
type Review struct {
	ID        int64     `json:"id"`
	SneakerID int64     `json:"sneakerId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// CartItem позиция корзины. Не больше одной на пару (sneakerId, size).
type CartItem struct {
	ID        int64 `json:"id"`
	SneakerID int64 `json:"sneakerId"`
	Size      int   `json:"size"`
	Quantity  int   `json:"quantity"`
}

// OrderStatus тип статуса заказа
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderItem позиция заказа с зафиксированной на момент оформления ценой
type OrderItem struct {
	SneakerID int64   `json:"sneakerId"`
	Size      int     `json:"size"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Customer данные покупателя из формы оформления заказа
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

// Order сущность заказа. После создания на клиенте не меняется,
// статусом управляет бэкенд.
type Order struct {
	ID          string      `json:"id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	Customer    Customer    `json:"customer"`
	CreatedAt   time.Time   `json:"createdAt"`
}
