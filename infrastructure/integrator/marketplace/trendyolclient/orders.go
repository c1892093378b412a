package trendyolclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	mkdomain "github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/domain"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

// ordersResponse é a página de pedidos retornada pela API do Trendyol
type ordersResponse struct {
	Content    []trendyolOrder `json:"content"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

type trendyolOrder struct {
	OrderNumber       string              `json:"orderNumber"`
	CustomerFirstName string              `json:"customerFirstName"`
	CustomerLastName  string              `json:"customerLastName"`
	CustomerEmail     string              `json:"customerEmail"`
	Lines             []trendyolOrderLine `json:"lines"`
	ShipmentAddress   trendyolAddress     `json:"shipmentAddress"`
	CargoProviderName string              `json:"cargoProviderName"`
	CargoPrice        float64             `json:"cargoPrice"`
	Status            string              `json:"status"`
	CurrencyCode      string              `json:"currencyCode"`
	TotalPrice        float64             `json:"totalPrice"`
}

type trendyolOrderLine struct {
	Barcode  string  `json:"barcode"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type trendyolAddress struct {
	Address     string `json:"address1"`
	City        string `json:"city"`
	District    string `json:"district"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode"`
	Phone       string `json:"phone"`
}

func (c *Client) ListOrders(ctx context.Context, params mkdomain.ListOrdersParams) (mkdomain.OrdersPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("size", strconv.Itoa(params.PageSize))
	if params.RemoteStatus != "" {
		query.Set("status", params.RemoteStatus)
	}

	endpoint := fmt.Sprintf("suppliers/%s/orders", c.creds.SupplierID)

	var response ordersResponse
	if err := c.caller.DoJSON(ctx, http.MethodGet, endpoint, query, nil, &response); err != nil {
		return mkdomain.OrdersPage{}, err
	}

	orders := make([]mkdomain.RemoteOrder, 0, len(response.Content))
	for _, order := range response.Content {
		orders = append(orders, order.toRemoteOrder())
	}

	return mkdomain.OrdersPage{
		Orders:  orders,
		HasMore: response.Page+1 < response.TotalPages,
	}, nil
}

func (o trendyolOrder) toRemoteOrder() mkdomain.RemoteOrder {
	items := make([]mkdomain.RemoteOrderItem, 0, len(o.Lines))
	for _, line := range o.Lines {
		items = append(items, mkdomain.RemoteOrderItem{
			SKU:       line.Barcode,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
	}

	return mkdomain.RemoteOrder{
		ExternalOrderID: o.OrderNumber,
		CustomerName:    strings.TrimSpace(o.CustomerFirstName + " " + o.CustomerLastName),
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.ShipmentAddress.Phone,
		Items:           items,
		ShippingAddress: mkdomain.RemoteAddress{
			Address:  o.ShipmentAddress.Address,
			City:     o.ShipmentAddress.City,
			State:    o.ShipmentAddress.District,
			Postcode: o.ShipmentAddress.PostalCode,
			Country:  o.ShipmentAddress.CountryCode,
		},
		ShippingMethod: o.CargoProviderName,
		ShippingCost:   o.CargoPrice,
		Status:         o.Status,
		Currency:       o.CurrencyCode,
		TotalAmount:    o.TotalPrice,
	}
}

func (c *Client) UpdateOrderStatus(ctx context.Context, externalOrderID string, status domain.OrderStatus) error {
	remoteStatus, ok := canonicalToRemote[status]
	if !ok {
		return errors.Errorf("status canônico sem mapeamento para o Trendyol: %s", status)
	}

	endpoint := fmt.Sprintf("suppliers/%s/orders/%s/status", c.creds.SupplierID, externalOrderID)

	payload := map[string]string{"status": remoteStatus}

	return c.caller.DoJSON(ctx, http.MethodPut, endpoint, nil, payload, nil)
}

func (c *Client) UpdateTracking(ctx context.Context, externalOrderID, trackingNumber, shippingCompany string) error {
	endpoint := fmt.Sprintf("suppliers/%s/orders/%s/cargo", c.creds.SupplierID, externalOrderID)

	payload := map[string]string{
		"trackingNumber":  trackingNumber,
		"shippingCompany": shippingCompany,
	}

	return c.caller.DoJSON(ctx, http.MethodPut, endpoint, nil, payload, nil)
}
