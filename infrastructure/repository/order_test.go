package repository

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

func newOrderRepositoryMock(t *testing.T) (OrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewOrderRepository(&postgres.Connection{DB: db}), mock
}

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "marketplace_id", "external_order_id", "local_order_id", "customer_name",
		"customer_email", "total_amount", "currency", "status", "remote_status",
		"tracking_number", "shipping_company", "created_at", "updated_at",
	})
}

func TestOrderRepository_UpsertByKey(t *testing.T) {
	upsertOrder := func() *domain.MarketplaceOrder {
		return &domain.MarketplaceOrder{
			MarketplaceID:   "trendyol",
			ExternalOrderID: "TY-1001",
			CustomerName:    "Ayşe Yılmaz",
			CustomerEmail:   "ayse@example.com",
			TotalAmount:     249.90,
			Currency:        "TRY",
			Status:          domain.OrderStatusProcessing,
			RemoteStatus:    "Created",
		}
	}

	t.Run("insere um pedido novo e sinaliza a criação", func(t *testing.T) {
		repository, mock := newOrderRepositoryMock(t)

		mock.ExpectQuery("INSERT INTO marketplace_orders").
			WillReturnRows(sqlmock.NewRows([]string{"id", "local_order_id", "inserted"}).
				AddRow("MKO001", nil, true))

		result, created, err := repository.UpsertByKey(upsertOrder())

		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "MKO001", result.ID)
		assert.Nil(t, result.LocalOrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("atualiza um pedido existente preservando o vínculo local", func(t *testing.T) {
		repository, mock := newOrderRepositoryMock(t)

		mock.ExpectQuery("INSERT INTO marketplace_orders").
			WillReturnRows(sqlmock.NewRows([]string{"id", "local_order_id", "inserted"}).
				AddRow("MKO001", "LOC001", false))

		result, created, err := repository.UpsertByKey(upsertOrder())

		assert.NoError(t, err)
		assert.False(t, created)
		require.NotNil(t, result.LocalOrderID)
		assert.Equal(t, "LOC001", *result.LocalOrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repete o upsert em conflito transitório de unicidade", func(t *testing.T) {
		repository, mock := newOrderRepositoryMock(t)

		mock.ExpectQuery("INSERT INTO marketplace_orders").
			WillReturnError(&pq.Error{Code: pqUniqueViolation})
		mock.ExpectQuery("INSERT INTO marketplace_orders").
			WillReturnRows(sqlmock.NewRows([]string{"id", "local_order_id", "inserted"}).
				AddRow("MKO001", nil, false))

		_, created, err := repository.UpsertByKey(upsertOrder())

		assert.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repete o upsert em falha de serialização", func(t *testing.T) {
		repository, mock := newOrderRepositoryMock(t)

		mock.ExpectQuery("INSERT INTO marketplace_orders").
			WillReturnError(&pq.Error{Code: pqSerializationFailure})
		mock.ExpectQuery("INSERT INTO marketplace_orders").
			WillReturnRows(sqlmock.NewRows([]string{"id", "local_order_id", "inserted"}).
				AddRow("MKO001", nil, true))

		_, created, err := repository.UpsertByKey(upsertOrder())

		assert.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("desiste após esgotar as tentativas de conflito transitório", func(t *testing.T) {
		repository, mock := newOrderRepositoryMock(t)

		for i := 0; i < upsertMaxAttempts; i++ {
			mock.ExpectQuery("INSERT INTO marketplace_orders").
				WillReturnError(&pq.Error{Code: pqUniqueViolation})
		}

		result, _, err := repository.UpsertByKey(upsertOrder())

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("não repete erro que não é conflito transitório", func(t *testing.T) {
		repository, mock := newOrderRepositoryMock(t)

		mock.ExpectQuery("INSERT INTO marketplace_orders").
			WillReturnError(errors.New("connection reset"))

		result, _, err := repository.UpsertByKey(upsertOrder())

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_GetByKey(t *testing.T) {
	t.Run("retorna o pedido encontrado pela chave de unicidade", func(t *testing.T) {
		repository, mock := newOrderRepositoryMock(t)

		now := time.Now()
		mock.ExpectQuery("SELECT .+ FROM marketplace_orders").
			WithArgs("TY-1001", "trendyol").
			WillReturnRows(orderRows().AddRow(
				"MKO001", "trendyol", "TY-1001", "LOC001", "Ayşe Yılmaz",
				"ayse@example.com", 249.90, "TRY", "processing", "Created",
				nil, nil, now, now,
			))

		order, err := repository.GetByKey("trendyol", "TY-1001")

		assert.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, "MKO001", order.ID)
		assert.Equal(t, domain.OrderStatusProcessing, order.Status)
		require.NotNil(t, order.LocalOrderID)
		assert.Equal(t, "LOC001", *order.LocalOrderID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retorna nil sem erro quando o pedido não existe", func(t *testing.T) {
		repository, mock := newOrderRepositoryMock(t)

		mock.ExpectQuery("SELECT .+ FROM marketplace_orders").
			WillReturnError(sql.ErrNoRows)

		order, err := repository.GetByKey("trendyol", "TY-9999")

		assert.NoError(t, err)
		assert.Nil(t, order)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderRepository_SetLocalOrderID(t *testing.T) {
	repository, mock := newOrderRepositoryMock(t)

	mock.ExpectExec("UPDATE marketplace_orders").
		WithArgs("LOC001", "MKO001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repository.SetLocalOrderID("MKO001", "LOC001")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_SetTracking(t *testing.T) {
	repository, mock := newOrderRepositoryMock(t)

	mock.ExpectExec("UPDATE marketplace_orders").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repository.SetTracking("MKO001", "TRK-42", "Yurtiçi Kargo")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_ListOrders(t *testing.T) {
	repository, mock := newOrderRepositoryMock(t)

	since := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 7, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ FROM marketplace_orders").
		WithArgs(since, until).
		WillReturnRows(orderRows().
			AddRow("MKO002", "hepsiburada", "HB-2001", nil, "Mehmet Demir",
				"mehmet@example.com", 120.00, "TRY", "shipped", "InTransit",
				"TRK-42", "Yurtiçi Kargo", until, until).
			AddRow("MKO001", "trendyol", "TY-1001", "LOC001", "Ayşe Yılmaz",
				"ayse@example.com", 249.90, "TRY", "completed", "Delivered",
				nil, nil, since, since))

	orders, err := repository.ListOrders(since, until)

	assert.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "MKO002", orders[0].ID)
	assert.Equal(t, "MKO001", orders[1].ID)
	require.NotNil(t, orders[0].TrackingNumber)
	assert.Equal(t, "TRK-42", *orders[0].TrackingNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}
