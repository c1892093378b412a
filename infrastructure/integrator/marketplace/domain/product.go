package domain

// RemoteProduct é o payload de produto enviado em lote para um marketplace
type RemoteProduct struct {
	Barcode       string  `json:"barcode"`
	Title         string  `json:"title"`
	ProductMainID string  `json:"productMainId"`
	Description   string  `json:"description"`
	StockCode     string  `json:"stockCode"`
	Quantity      int     `json:"quantity"`
	ListPrice     float64 `json:"listPrice"`
	SalePrice     float64 `json:"salePrice"`
	CurrencyType  string  `json:"currencyType"`
	VatRate       float64 `json:"vatRate"`
}

// ProductsPage é uma página de produtos já publicados no marketplace
type ProductsPage struct {
	Products []RemoteProduct
	HasMore  bool
}

// BatchItemError descreve a rejeição de um item individual dentro de um
// lote aceito pelo transporte
type BatchItemError struct {
	StockCode string `json:"stockCode"`
	Message   string `json:"message"`
}

// BatchResult é o resultado de um envio de lote de produtos. Falha parcial
// é um resultado normal: a chamada sucede no nível de transporte mesmo que
// itens individuais tenham sido rejeitados.
type BatchResult struct {
	SuccessCount  int              `json:"success_count"`
	FailedCount   int              `json:"failed_count"`
	PerItemErrors []BatchItemError `json:"per_item_errors,omitempty"`
}
