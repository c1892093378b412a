// Package storefront implementa o sistema canônico de pedidos do lojista
// sobre o postgres. O motor de reconciliação materializa pedidos vindos dos
// marketplaces através desta camada.
package storefront

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"github.com/vfg2006/marketplace-manager-api/pkg/utils"
)

const (
	ordersTable     = "orders"
	orderItemsTable = "order_items"
	productsTable   = "products"
)

type OrderSystem interface {
	// CreateOrder materializa um pedido local a partir da especificação
	// recebida do marketplace e devolve o id do pedido criado. Itens cujo
	// SKU não existe no catálogo entram sem vínculo de produto e geram
	// apenas um aviso no log.
	CreateOrder(ctx context.Context, spec *domain.LocalOrderSpec) (string, error)
	SetOrderStatus(ctx context.Context, localOrderID string, status domain.OrderStatus) error
	SetTracking(ctx context.Context, localOrderID, trackingNumber, shippingCompany string) error
	// LookupProductIDBySKU devolve id vazio quando o SKU não existe
	LookupProductIDBySKU(sku string) (string, error)
	ListOrderItems(localOrderID string) ([]*domain.OrderItem, error)
	ListProductsForMarketplace(kind domain.MarketplaceKind) ([]*domain.StoreProduct, error)
}

type orderSystem struct {
	conn *postgres.Connection
}

func NewOrderSystem(conn *postgres.Connection) OrderSystem {
	return &orderSystem{
		conn: conn,
	}
}

func (s *orderSystem) CreateOrder(ctx context.Context, spec *domain.LocalOrderSpec) (string, error) {
	orderID, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar o id do pedido local: %w", err)
	}

	total := spec.ShippingCost
	for _, item := range spec.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		orderSQL, orderArgs, err := squirrel.
			Insert(ordersTable).
			Columns(
				"id",
				"marketplace",
				"customer_name",
				"customer_email",
				"customer_phone",
				"shipping_address",
				"shipping_city",
				"shipping_state",
				"shipping_postcode",
				"shipping_country",
				"shipping_method",
				"shipping_cost",
				"total_amount",
				"currency",
				"status",
			).
			Values(
				orderID,
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
				total,
				spec.Currency,
				spec.Status,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, orderSQL, orderArgs...); err != nil {
			return fmt.Errorf("erro ao inserir o pedido local: %w", err)
		}

		for _, item := range spec.Items {
			productID, err := s.LookupProductIDBySKU(item.SKU)
			if err != nil {
				return err
			}

			var productRef interface{}
			if productID == "" {
				logrus.WithFields(logrus.Fields{
					"marketplace": spec.Marketplace,
					"sku":         item.SKU,
				}).Warn("SKU do pedido não encontrado no catálogo, item gravado sem vínculo de produto")
			} else {
				productRef = productID
			}

			itemSQL, itemArgs, err := squirrel.
				Insert(orderItemsTable).
				Columns("order_id", "product_id", "sku", "quantity", "unit_price", "line_total").
				Values(
					orderID,
					productRef,
					item.SKU,
					item.Quantity,
					item.UnitPrice,
					item.UnitPrice*float64(item.Quantity),
				).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, itemSQL, itemArgs...); err != nil {
				return fmt.Errorf("erro ao inserir item %s do pedido local: %w", item.SKU, err)
			}
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return orderID, nil
}

func (s *orderSystem) SetOrderStatus(ctx context.Context, localOrderID string, status domain.OrderStatus) error {
	return s.updateOrder(ctx, localOrderID, map[string]interface{}{
		"status": status,
	})
}

func (s *orderSystem) SetTracking(ctx context.Context, localOrderID, trackingNumber, shippingCompany string) error {
	return s.updateOrder(ctx, localOrderID, map[string]interface{}{
		"tracking_number":  trackingNumber,
		"shipping_company": shippingCompany,
	})
}

func (s *orderSystem) updateOrder(ctx context.Context, localOrderID string, fields map[string]interface{}) error {
	queryBuilder := squirrel.
		Update(ordersTable).
		Where(squirrel.Eq{"id": localOrderID}).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		PlaceholderFormat(squirrel.Dollar)

	for column, value := range fields {
		queryBuilder = queryBuilder.Set(column, value)
	}

	updateSQL, updateArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.ExecContext(ctx, updateSQL, updateArgs...)
	return err
}

func (s *orderSystem) LookupProductIDBySKU(sku string) (string, error) {
	lookupSQL, lookupArgs, err := squirrel.
		Select("id").
		From(productsTable).
		Where(squirrel.Eq{"sku": sku}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", err
	}

	var productID string
	err = s.conn.QueryRow(lookupSQL, lookupArgs...).Scan(&productID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return productID, nil
}

func (s *orderSystem) ListOrderItems(localOrderID string) ([]*domain.OrderItem, error) {
	itemsSQL, itemsArgs, err := squirrel.
		Select("order_id", "product_id", "sku", "quantity", "unit_price", "line_total").
		From(orderItemsTable).
		Where(squirrel.Eq{"order_id": localOrderID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.Query(itemsSQL, itemsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*domain.OrderItem, 0)
	for rows.Next() {
		item := &domain.OrderItem{}
		if err := rows.Scan(
			&item.OrderID,
			&item.ProductID,
			&item.SKU,
			&item.Quantity,
			&item.UnitPrice,
			&item.LineTotal,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *orderSystem) ListProductsForMarketplace(kind domain.MarketplaceKind) ([]*domain.StoreProduct, error) {
	productsSQL, productsArgs, err := squirrel.
		Select("id", "sku", "name", "description", "price", "stock_quantity", "vat_rate", "active", "marketplaces", "created_at", "updated_at").
		From(productsTable).
		Where(squirrel.Eq{"active": true}).
		Where("? = ANY(marketplaces)", string(kind)).
		OrderBy("sku").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.Query(productsSQL, productsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*domain.StoreProduct, 0)
	for rows.Next() {
		product := &domain.StoreProduct{}
		var marketplaces pq.StringArray

		if err := rows.Scan(
			&product.ID,
			&product.SKU,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.StockQuantity,
			&product.VATRate,
			&product.Active,
			&marketplaces,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}

		for _, m := range marketplaces {
			product.Marketplaces = append(product.Marketplaces, domain.MarketplaceKind(m))
		}

		products = append(products, product)
	}

	return products, rows.Err()
}
