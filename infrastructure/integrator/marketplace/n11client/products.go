package n11client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	mkdomain "github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/domain"
)

type productsResponse struct {
	Products   []mkdomain.RemoteProduct `json:"products"`
	Pagination n11Pagination            `json:"pagination"`
}

type importResponse struct {
	SuccessCount int               `json:"successCount"`
	FailedCount  int               `json:"failedCount"`
	Errors       []importItemError `json:"errors"`
}

type importItemError struct {
	StockCode string `json:"stockCode"`
	Message   string `json:"message"`
}

func (c *Client) ListProducts(ctx context.Context, page, size int) (mkdomain.ProductsPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var response productsResponse
	if err := c.caller.DoJSON(ctx, http.MethodGet, "products", query, nil, &response); err != nil {
		return mkdomain.ProductsPage{}, err
	}

	return mkdomain.ProductsPage{
		Products: response.Products,
		HasMore:  response.Pagination.CurrentPage+1 < response.Pagination.PageCount,
	}, nil
}

func (c *Client) PushProductBatch(ctx context.Context, products []mkdomain.RemoteProduct) (mkdomain.BatchResult, error) {
	payload := map[string]any{"items": products}

	var response importResponse
	if err := c.caller.DoJSON(ctx, http.MethodPost, "products/import", nil, payload, &response); err != nil {
		return mkdomain.BatchResult{}, err
	}

	result := mkdomain.BatchResult{
		SuccessCount: response.SuccessCount,
		FailedCount:  response.FailedCount,
	}
	for _, itemError := range response.Errors {
		result.PerItemErrors = append(result.PerItemErrors, mkdomain.BatchItemError{
			StockCode: itemError.StockCode,
			Message:   itemError.Message,
		})
	}

	return result, nil
}
