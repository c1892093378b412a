package hepsiburadaclient

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
	Items      []hepsiburadaOrder `json:"items"`
	PageNumber int                `json:"pageNumber"`
	PageCount  int                `json:"pageCount"`
}

type hepsiburadaOrder struct {
	OrderNumber     string                 `json:"orderNumber"`
	CustomerName    string                 `json:"customerName"`
	CustomerEmail   string                 `json:"email"`
	Phone           string                 `json:"phoneNumber"`
	Items           []hepsiburadaOrderItem `json:"lineItems"`
	ShippingAddress hepsiburadaAddress     `json:"shippingAddress"`
	CargoCompany    string                 `json:"cargoCompany"`
	ShippingTotal   float64                `json:"shippingTotalPrice"`
	Status          string                 `json:"status"`
	Currency        string                 `json:"currency"`
	TotalPrice      float64                `json:"totalPrice"`
}

type hepsiburadaOrderItem struct {
	MerchantSKU string  `json:"merchantSku"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type hepsiburadaAddress struct {
	AddressLine string `json:"address"`
	City        string `json:"city"`
	Town        string `json:"town"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode"`
}

func (c *Client) ListOrders(ctx context.Context, params mkdomain.ListOrdersParams) (mkdomain.OrdersPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.PageSize))
	if params.RemoteStatus != "" {
		query.Set("status", params.RemoteStatus)
	}

	endpoint := fmt.Sprintf("order/merchantid/%s", c.creds.MerchantID)

	var response ordersResponse
	if err := c.caller.DoJSON(ctx, http.MethodGet, endpoint, query, nil, &response); err != nil {
		return mkdomain.OrdersPage{}, err
	}

	orders := make([]mkdomain.RemoteOrder, 0, len(response.Items))
	for _, order := range response.Items {
		orders = append(orders, order.toRemoteOrder())
	}

	return mkdomain.OrdersPage{
		Orders:  orders,
		HasMore: response.PageNumber+1 < response.PageCount,
	}, nil
}

func (o hepsiburadaOrder) toRemoteOrder() mkdomain.RemoteOrder {
	items := make([]mkdomain.RemoteOrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, mkdomain.RemoteOrderItem{
			SKU:       item.MerchantSKU,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}

	return mkdomain.RemoteOrder{
		ExternalOrderID: o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.Phone,
		Items:           items,
		ShippingAddress: mkdomain.RemoteAddress{
			Address:  o.ShippingAddress.AddressLine,
			City:     o.ShippingAddress.City,
			State:    o.ShippingAddress.Town,
			Postcode: o.ShippingAddress.PostalCode,
			Country:  o.ShippingAddress.CountryCode,
		},
		ShippingMethod: o.CargoCompany,
		ShippingCost:   o.ShippingTotal,
		Status:         o.Status,
		Currency:       o.Currency,
		TotalAmount:    o.TotalPrice,
	}
}

func (c *Client) UpdateOrderStatus(ctx context.Context, externalOrderID string, status domain.OrderStatus) error {
	remoteStatus, ok := canonicalToRemote[status]
	if !ok {
		return errors.Errorf("status canônico sem mapeamento para o Hepsiburada: %s", status)
	}

	payload := map[string]string{
		"orderId": externalOrderID,
		"status":  remoteStatus,
	}

	return c.caller.DoJSON(ctx, http.MethodPost, "order/update-status", nil, payload, nil)
}

func (c *Client) UpdateTracking(ctx context.Context, externalOrderID, trackingNumber, shippingCompany string) error {
	payload := map[string]string{
		"orderId":         externalOrderID,
		"trackingNumber":  trackingNumber,
		"shippingCompany": shippingCompany,
	}

	return c.caller.DoJSON(ctx, http.MethodPost, "order/update-tracking-number", nil, payload, nil)
}
