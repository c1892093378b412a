package storefront

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

func newOrderSystemMock(t *testing.T) (OrderSystem, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewOrderSystem(&postgres.Connection{DB: db}), mock
}

func localOrderSpec() *domain.LocalOrderSpec {
	return &domain.LocalOrderSpec{
		Marketplace:   domain.MarketplaceKindTrendyol,
		CustomerName:  "Ayşe Yılmaz",
		CustomerEmail: "ayse@example.com",
		CustomerPhone: "+90 532 000 0000",
		Items: []domain.OrderLineSpec{
			{SKU: "GZL-AVT-001", Quantity: 2, UnitPrice: 100.00},
			{SKU: "SKU-INEXISTENTE", Quantity: 1, UnitPrice: 49.90},
		},
		ShippingAddress: domain.OrderAddress{
			Address:  "Atatürk Cad. 42",
			City:     "İstanbul",
			State:    "Kadıköy",
			Postcode: "34710",
			Country:  "TR",
		},
		ShippingMethod: "standard",
		ShippingCost:   20.00,
		Currency:       "TRY",
		Status:         domain.OrderStatusProcessing,
	}
}

func TestOrderSystem_CreateOrder(t *testing.T) {
	t.Run("materializa o pedido com total somando itens e frete", func(t *testing.T) {
		system, mock := newOrderSystemMock(t)
		spec := localOrderSpec()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WithArgs(
				sqlmock.AnyArg(),
				spec.Marketplace,
				spec.CustomerName,
				spec.CustomerEmail,
				spec.CustomerPhone,
				spec.ShippingAddress.Address,
				spec.ShippingAddress.City,
				spec.ShippingAddress.State,
				spec.ShippingAddress.Postcode,
				spec.ShippingAddress.Country,
				spec.ShippingMethod,
				spec.ShippingCost,
				269.90,
				spec.Currency,
				spec.Status,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectQuery("SELECT id FROM products").
			WithArgs("GZL-AVT-001").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("PRD001"))
		mock.ExpectExec("INSERT INTO order_items").
			WithArgs(sqlmock.AnyArg(), "PRD001", "GZL-AVT-001", 2, 100.00, 200.00).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectQuery("SELECT id FROM products").
			WithArgs("SKU-INEXISTENTE").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec("INSERT INTO order_items").
			WithArgs(sqlmock.AnyArg(), nil, "SKU-INEXISTENTE", 1, 49.90, 49.90).
			WillReturnResult(sqlmock.NewResult(0, 1))

		mock.ExpectCommit()

		orderID, err := system.CreateOrder(context.Background(), spec)

		assert.NoError(t, err)
		assert.NotEmpty(t, orderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("desfaz a transação quando um item falha", func(t *testing.T) {
		system, mock := newOrderSystemMock(t)
		spec := localOrderSpec()
		spec.Items = spec.Items[:1]

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT id FROM products").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("PRD001"))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnError(errors.New("deadlock detected"))
		mock.ExpectRollback()

		orderID, err := system.CreateOrder(context.Background(), spec)

		assert.Error(t, err)
		assert.Empty(t, orderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderSystem_SetOrderStatus(t *testing.T) {
	system, mock := newOrderSystemMock(t)

	mock.ExpectExec("UPDATE orders").
		WithArgs(domain.OrderStatusShipped, "LOC001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := system.SetOrderStatus(context.Background(), "LOC001", domain.OrderStatusShipped)

	assert.NoError(t, err)
}

func TestOrderSystem_LookupProductIDBySKU(t *testing.T) {
	t.Run("retorna o id do produto cadastrado", func(t *testing.T) {
		system, mock := newOrderSystemMock(t)

		mock.ExpectQuery("SELECT id FROM products").
			WithArgs("GZL-AVT-001").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("PRD001"))

		productID, err := system.LookupProductIDBySKU("GZL-AVT-001")

		assert.NoError(t, err)
		assert.Equal(t, "PRD001", productID)
	})

	t.Run("retorna id vazio sem erro quando o SKU não existe", func(t *testing.T) {
		system, mock := newOrderSystemMock(t)

		mock.ExpectQuery("SELECT id FROM products").
			WillReturnError(sql.ErrNoRows)

		productID, err := system.LookupProductIDBySKU("SKU-INEXISTENTE")

		assert.NoError(t, err)
		assert.Empty(t, productID)
	})
}

func TestOrderSystem_ListOrderItems(t *testing.T) {
	system, mock := newOrderSystemMock(t)

	mock.ExpectQuery("SELECT .+ FROM order_items").
		WithArgs("LOC001").
		WillReturnRows(sqlmock.NewRows([]string{
			"order_id", "product_id", "sku", "quantity", "unit_price", "line_total",
		}).
			AddRow("LOC001", "PRD001", "GZL-AVT-001", 2, 100.00, 200.00).
			AddRow("LOC001", nil, "SKU-INEXISTENTE", 1, 49.90, 49.90))

	items, err := system.ListOrderItems("LOC001")

	assert.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].ProductID)
	assert.Equal(t, "PRD001", *items[0].ProductID)
	assert.Nil(t, items[1].ProductID)
	assert.Equal(t, 200.00, items[0].LineTotal)
}

func TestOrderSystem_ListProductsForMarketplace(t *testing.T) {
	system, mock := newOrderSystemMock(t)

	now := time.Now()
	mock.ExpectQuery("SELECT .+ FROM products").
		WithArgs(true, "trendyol").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "sku", "name", "description", "price", "stock_quantity",
			"vat_rate", "active", "marketplaces", "created_at", "updated_at",
		}).AddRow(
			"PRD001", "GZL-AVT-001", "Aviator Güneş Gözlüğü", "Metal çerçeve",
			349.90, 12, 20.0, true, "{trendyol,hepsiburada}", now, now,
		))

	products, err := system.ListProductsForMarketplace(domain.MarketplaceKindTrendyol)

	assert.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "GZL-AVT-001", products[0].SKU)
	assert.Equal(t, []domain.MarketplaceKind{
		domain.MarketplaceKindTrendyol,
		domain.MarketplaceKindHepsiburada,
	}, products[0].Marketplaces)
}
