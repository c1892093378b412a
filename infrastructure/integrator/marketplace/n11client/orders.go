package n11client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	mkdomain "github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/domain"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

type ordersResponse struct {
	Orders     []n11Order    `json:"orders"`
	Pagination n11Pagination `json:"pagination"`
}

type n11Pagination struct {
	CurrentPage int `json:"currentPage"`
	PageCount   int `json:"pageCount"`
}

type n11Order struct {
	OrderNumber   string         `json:"orderNumber"`
	BuyerFullName string         `json:"buyerFullName"`
	BuyerEmail    string         `json:"buyerEmail"`
	BuyerPhone    string         `json:"buyerPhone"`
	Items         []n11OrderItem `json:"orderItems"`
	Address       n11Address     `json:"shippingAddress"`
	CargoCompany  string         `json:"cargoCompany"`
	ShippingCost  float64        `json:"shippingCost"`
	Status        string         `json:"status"`
	Currency      string         `json:"currency"`
	TotalAmount   float64        `json:"totalAmount"`
}

type n11OrderItem struct {
	SellerStockCode string  `json:"sellerStockCode"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
}

type n11Address struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

func (c *Client) ListOrders(ctx context.Context, params mkdomain.ListOrdersParams) (mkdomain.OrdersPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.PageSize))
	if params.RemoteStatus != "" {
		query.Set("status", params.RemoteStatus)
	}

	var response ordersResponse
	if err := c.caller.DoJSON(ctx, http.MethodGet, "orders", query, nil, &response); err != nil {
		return mkdomain.OrdersPage{}, err
	}

	orders := make([]mkdomain.RemoteOrder, 0, len(response.Orders))
	for _, order := range response.Orders {
		orders = append(orders, order.toRemoteOrder())
	}

	return mkdomain.OrdersPage{
		Orders:  orders,
		HasMore: response.Pagination.CurrentPage+1 < response.Pagination.PageCount,
	}, nil
}

func (o n11Order) toRemoteOrder() mkdomain.RemoteOrder {
	items := make([]mkdomain.RemoteOrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, mkdomain.RemoteOrderItem{
			SKU:       item.SellerStockCode,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}

	return mkdomain.RemoteOrder{
		ExternalOrderID: o.OrderNumber,
		CustomerName:    o.BuyerFullName,
		CustomerEmail:   o.BuyerEmail,
		CustomerPhone:   o.BuyerPhone,
		Items:           items,
		ShippingAddress: mkdomain.RemoteAddress{
			Address:  o.Address.Address,
			City:     o.Address.City,
			State:    o.Address.District,
			Postcode: o.Address.ZipCode,
			Country:  o.Address.Country,
		},
		ShippingMethod: o.CargoCompany,
		ShippingCost:   o.ShippingCost,
		Status:         o.Status,
		Currency:       o.Currency,
		TotalAmount:    o.TotalAmount,
	}
}

func (c *Client) UpdateOrderStatus(ctx context.Context, externalOrderID string, status domain.OrderStatus) error {
	remoteStatus, ok := canonicalToRemote[status]
	if !ok {
		return errors.Errorf("status canônico sem mapeamento para o n11: %s", status)
	}

	endpoint := fmt.Sprintf("orders/%s/status", externalOrderID)

	payload := map[string]string{"status": remoteStatus}

	return c.caller.DoJSON(ctx, http.MethodPut, endpoint, nil, payload, nil)
}

func (c *Client) UpdateTracking(ctx context.Context, externalOrderID, trackingNumber, shippingCompany string) error {
	endpoint := fmt.Sprintf("orders/%s/tracking", externalOrderID)

	payload := map[string]string{
		"trackingNumber":  trackingNumber,
		"shippingCompany": shippingCompany,
	}

	return c.caller.DoJSON(ctx, http.MethodPut, endpoint, nil, payload, nil)
}
