package domain

// RemoteOrder é a representação de um pedido exatamente como foi buscado no
// marketplace. É transitória: serve apenas de entrada para a reconciliação,
// nunca é persistida como está.
type RemoteOrder struct {
	ExternalOrderID string            `json:"external_order_id"`
	CustomerName    string            `json:"customer_name"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerPhone   string            `json:"customer_phone"`
	Items           []RemoteOrderItem `json:"items"`
	ShippingAddress RemoteAddress     `json:"shipping_address"`
	ShippingMethod  string            `json:"shipping_method"`
	ShippingCost    float64           `json:"shipping_cost"`
	Status          string            `json:"status"`
	Currency        string            `json:"currency"`
	TotalAmount     float64           `json:"total_amount"`
}

type RemoteOrderItem struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type RemoteAddress struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// ListOrdersParams define a paginação e o filtro de status de uma listagem
// de pedidos. RemoteStatus é expresso no vocabulário do próprio marketplace
// (o chamador passa o valor sem tradução); vazio significa sem filtro.
type ListOrdersParams struct {
	Page         int
	PageSize     int
	RemoteStatus string
}

// OrdersPage é uma página de pedidos remotos. A ordem dos elementos é a
// ordem retornada pela API de paginação do marketplace (definida pelo lado
// remoto, não pelo motor).
type OrdersPage struct {
	Orders  []RemoteOrder
	HasMore bool
}
