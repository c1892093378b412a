package trendyolclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	mkdomain "github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/domain"
)

type productsResponse struct {
	Content    []mkdomain.RemoteProduct `json:"content"`
	Page       int                      `json:"page"`
	TotalPages int                      `json:"totalPages"`
}

type batchResponse struct {
	SuccessCount int                `json:"successCount"`
	FailedCount  int                `json:"failedCount"`
	Failures     []batchItemFailure `json:"failures"`
}

type batchItemFailure struct {
	StockCode string `json:"stockCode"`
	Reason    string `json:"reason"`
}

func (c *Client) ListProducts(ctx context.Context, page, size int) (mkdomain.ProductsPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	endpoint := fmt.Sprintf("suppliers/%s/products", c.creds.SupplierID)

	var response productsResponse
	if err := c.caller.DoJSON(ctx, http.MethodGet, endpoint, query, nil, &response); err != nil {
		return mkdomain.ProductsPage{}, err
	}

	return mkdomain.ProductsPage{
		Products: response.Content,
		HasMore:  response.Page+1 < response.TotalPages,
	}, nil
}

// PushProductBatch envia um lote de produtos para o Trendyol. Rejeições por
// item voltam no resultado: a chamada só falha se o transporte falhar.
func (c *Client) PushProductBatch(ctx context.Context, products []mkdomain.RemoteProduct) (mkdomain.BatchResult, error) {
	endpoint := fmt.Sprintf("suppliers/%s/v2/products", c.creds.SupplierID)

	payload := map[string]any{"items": products}

	var response batchResponse
	if err := c.caller.DoJSON(ctx, http.MethodPost, endpoint, nil, payload, &response); err != nil {
		return mkdomain.BatchResult{}, err
	}

	result := mkdomain.BatchResult{
		SuccessCount: response.SuccessCount,
		FailedCount:  response.FailedCount,
	}
	for _, failure := range response.Failures {
		result.PerItemErrors = append(result.PerItemErrors, mkdomain.BatchItemError{
			StockCode: failure.StockCode,
			Message:   failure.Reason,
		})
	}

	return result, nil
}
