package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"github.com/vfg2006/marketplace-manager-api/pkg/utils"
)

const (
	marketplaceOrdersTable = "marketplace_orders"

	// upsertMaxAttempts limita as repetições de um upsert que esbarrar em
	// corrida de serialização no banco
	upsertMaxAttempts = 3
)

// Códigos de erro do PostgreSQL tratados como conflito transitório
const (
	pqUniqueViolation      = "23505"
	pqSerializationFailure = "40001"
)

type OrderRepository interface {
	// UpsertByKey insere ou atualiza um pedido pela chave de unicidade
	// (marketplace_id, external_order_id) de forma atômica. Retorna o
	// registro resultante e se ele foi criado agora.
	UpsertByKey(order *domain.MarketplaceOrder) (*domain.MarketplaceOrder, bool, error)
	GetByKey(marketplaceID, externalOrderID string) (*domain.MarketplaceOrder, error)
	GetByID(orderID string) (*domain.MarketplaceOrder, error)
	GetByLocalOrderID(localOrderID string) (*domain.MarketplaceOrder, error)
	SetLocalOrderID(orderID, localOrderID string) error
	SetTracking(orderID, trackingNumber, shippingCompany string) error
	ListOrders(since, until time.Time) ([]*domain.MarketplaceOrder, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

const orderColumns = `id, marketplace_id, external_order_id, local_order_id, customer_name,
	customer_email, total_amount, currency, status, remote_status, tracking_number,
	shipping_company, created_at, updated_at`

// UpsertByKey usa ON CONFLICT na chave de unicidade para que dois ciclos
// concorrentes da mesma conta nunca dupliquem um pedido. O (xmax = 0) do
// RETURNING distingue inserção de atualização. Conflitos transitórios do
// banco são resolvidos repetindo o upsert, nunca expostos ao chamador.
func (r *orderRepository) UpsertByKey(order *domain.MarketplaceOrder) (*domain.MarketplaceOrder, bool, error) {
	if order.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, false, fmt.Errorf("erro ao gerar o id do pedido: %w", err)
		}
		order.ID = id
	}

	upsertSQL, upsertArgs, err := squirrel.
		Insert(marketplaceOrdersTable).
		Columns(
			"id",
			"marketplace_id",
			"external_order_id",
			"customer_name",
			"customer_email",
			"total_amount",
			"currency",
			"status",
			"remote_status",
		).
		Values(
			order.ID,
			order.MarketplaceID,
			order.ExternalOrderID,
			order.CustomerName,
			order.CustomerEmail,
			order.TotalAmount,
			order.Currency,
			order.Status,
			order.RemoteStatus,
		).
		Suffix(`
			ON CONFLICT (marketplace_id, external_order_id) DO UPDATE SET
				customer_name = EXCLUDED.customer_name,
				customer_email = EXCLUDED.customer_email,
				total_amount = EXCLUDED.total_amount,
				currency = EXCLUDED.currency,
				status = EXCLUDED.status,
				remote_status = EXCLUDED.remote_status,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, local_order_id, (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao construir query de upsert: %w", err)
	}

	var created bool
	for attempt := 1; ; attempt++ {
		err = r.conn.QueryRow(upsertSQL, upsertArgs...).Scan(&order.ID, &order.LocalOrderID, &created)
		if err == nil {
			return order, created, nil
		}

		if !isTransientConflict(err) || attempt >= upsertMaxAttempts {
			return nil, false, fmt.Errorf("erro ao executar upsert do pedido %s/%s: %w",
				order.MarketplaceID, order.ExternalOrderID, err)
		}

		logrus.WithFields(logrus.Fields{
			"marketplace_id":    order.MarketplaceID,
			"external_order_id": order.ExternalOrderID,
			"attempt":           attempt,
		}).Warn("Conflito transitório no upsert do pedido, repetindo")
	}
}

// isTransientConflict identifica corridas de chave/serialização que devem
// ser resolvidas repetindo o upsert
func isTransientConflict(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		code := string(pqErr.Code)
		return code == pqUniqueViolation || code == pqSerializationFailure
	}
	return false
}

func (r *orderRepository) GetByKey(marketplaceID, externalOrderID string) (*domain.MarketplaceOrder, error) {
	return r.getOrder(squirrel.Eq{
		"marketplace_id":    marketplaceID,
		"external_order_id": externalOrderID,
	})
}

func (r *orderRepository) GetByID(orderID string) (*domain.MarketplaceOrder, error) {
	return r.getOrder(squirrel.Eq{"id": orderID})
}

func (r *orderRepository) GetByLocalOrderID(localOrderID string) (*domain.MarketplaceOrder, error) {
	return r.getOrder(squirrel.Eq{"local_order_id": localOrderID})
}

func (r *orderRepository) getOrder(whereClause map[string]interface{}) (*domain.MarketplaceOrder, error) {
	orderSQL, orderArgs, err := squirrel.
		Select(orderColumns).
		From(marketplaceOrdersTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(orderSQL, orderArgs...)

	order, err := r.deserializeOrder(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) SetLocalOrderID(orderID, localOrderID string) error {
	return r.updateOrder(orderID, map[string]interface{}{
		"local_order_id": localOrderID,
	})
}

func (r *orderRepository) SetTracking(orderID, trackingNumber, shippingCompany string) error {
	return r.updateOrder(orderID, map[string]interface{}{
		"tracking_number":  trackingNumber,
		"shipping_company": shippingCompany,
	})
}

func (r *orderRepository) updateOrder(orderID string, fields map[string]interface{}) error {
	queryBuilder := squirrel.
		Update(marketplaceOrdersTable).
		Where(squirrel.Eq{"id": orderID}).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		PlaceholderFormat(squirrel.Dollar)

	for column, value := range fields {
		queryBuilder = queryBuilder.Set(column, value)
	}

	updateSQL, updateArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(updateSQL, updateArgs...)
	return err
}

func (r *orderRepository) ListOrders(since, until time.Time) ([]*domain.MarketplaceOrder, error) {
	ordersSQL, ordersArgs, err := squirrel.
		Select(orderColumns).
		From(marketplaceOrdersTable).
		Where(squirrel.GtOrEq{"created_at": since}).
		Where(squirrel.LtOrEq{"created_at": until}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ordersSQL, ordersArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domain.MarketplaceOrder, 0)
	for rows.Next() {
		order, err := r.deserializeOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

func (r *orderRepository) deserializeOrder(scan func(...any) error) (*domain.MarketplaceOrder, error) {
	order := &domain.MarketplaceOrder{}

	if err := scan(
		&order.ID,
		&order.MarketplaceID,
		&order.ExternalOrderID,
		&order.LocalOrderID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.TotalAmount,
		&order.Currency,
		&order.Status,
		&order.RemoteStatus,
		&order.TrackingNumber,
		&order.ShippingCompany,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return order, nil
}
