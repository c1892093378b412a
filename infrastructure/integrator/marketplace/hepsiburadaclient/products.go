package hepsiburadaclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	mkdomain "github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/domain"
)

type productsResponse struct {
	Items      []mkdomain.RemoteProduct `json:"items"`
	PageNumber int                      `json:"pageNumber"`
	PageCount  int                      `json:"pageCount"`
}

type importResponse struct {
	SuccessCount int               `json:"successCount"`
	FailedCount  int               `json:"failedCount"`
	Errors       []importItemError `json:"errors"`
}

type importItemError struct {
	MerchantSKU string `json:"merchantSku"`
	Message     string `json:"message"`
}

func (c *Client) ListProducts(ctx context.Context, page, size int) (mkdomain.ProductsPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var response productsResponse
	if err := c.caller.DoJSON(ctx, http.MethodGet, "product/api/products/get-merchant-products", query, nil, &response); err != nil {
		return mkdomain.ProductsPage{}, err
	}

	return mkdomain.ProductsPage{
		Products: response.Items,
		HasMore:  response.PageNumber+1 < response.PageCount,
	}, nil
}

func (c *Client) PushProductBatch(ctx context.Context, products []mkdomain.RemoteProduct) (mkdomain.BatchResult, error) {
	var response importResponse
	if err := c.caller.DoJSON(ctx, http.MethodPost, "product/api/products/import", nil, products, &response); err != nil {
		return mkdomain.BatchResult{}, err
	}

	result := mkdomain.BatchResult{
		SuccessCount: response.SuccessCount,
		FailedCount:  response.FailedCount,
	}
	for _, itemError := range response.Errors {
		result.PerItemErrors = append(result.PerItemErrors, mkdomain.BatchItemError{
			StockCode: itemError.MerchantSKU,
			Message:   itemError.Message,
		})
	}

	return result, nil
}
