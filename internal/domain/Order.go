package domain

import (
	"time"
)

// OrderStatus é o ciclo de vida canônico de um pedido do lado do lojista,
// independente do vocabulário de cada marketplace.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// MarketplaceOrder é o registro de vínculo mantido pelo motor de
// reconciliação. O par (MarketplaceID, ExternalOrderID) é a chave de
// unicidade: existe no máximo um registro por pedido real do marketplace.
type MarketplaceOrder struct {
	ID              string      `json:"id"`
	MarketplaceID   string      `json:"marketplace_id"`
	ExternalOrderID string      `json:"external_order_id"`
	LocalOrderID    *string     `json:"local_order_id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	TotalAmount     float64     `json:"total_amount"`
	Currency        string      `json:"currency"`
	Status          OrderStatus `json:"status"`
	RemoteStatus    string      `json:"remote_status"`
	TrackingNumber  *string     `json:"tracking_number"`
	ShippingCompany *string     `json:"shipping_company"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderAddress é o snapshot de endereço recebido do marketplace
type OrderAddress struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// OrderLineSpec descreve um item do pedido na criação do pedido local
type OrderLineSpec struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// LocalOrderSpec é a especificação usada para materializar um pedido no
// sistema canônico de pedidos quando o marketplace envia um pedido novo
type LocalOrderSpec struct {
	Marketplace     MarketplaceKind `json:"marketplace"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerPhone   string          `json:"customer_phone"`
	Items           []OrderLineSpec `json:"items"`
	ShippingAddress OrderAddress    `json:"shipping_address"`
	ShippingMethod  string          `json:"shipping_method"`
	ShippingCost    float64         `json:"shipping_cost"`
	Currency        string          `json:"currency"`
	Status          OrderStatus     `json:"status"`
}

type UpdateTrackingRequest struct {
	OrderID         string `json:"order_id"`
	TrackingNumber  string `json:"tracking_number"`
	ShippingCompany string `json:"shipping_company"`
}
