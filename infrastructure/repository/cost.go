package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

const productCostsTable = "product_costs"

type CostRepository interface {
	GetCostRecord(productID string) (*domain.CostRecord, error)
	// SaveOrUpdate grava o registro de custos do produto por inteiro:
	// campos omitidos na requisição sobrescrevem com zero
	SaveOrUpdate(record *domain.CostRecord) error
	ListCostRecords() ([]*domain.CostRecord, error)
}

type costRepository struct {
	conn *postgres.Connection
}

func NewCostRepository(conn *postgres.Connection) CostRepository {
	return &costRepository{
		conn: conn,
	}
}

const costColumns = `product_id, supplier_cost, shipping_cost, packaging_cost, other_costs,
	commission_rate, tax_rate, markup_rate, calculated_price, updated_at`

func (r *costRepository) GetCostRecord(productID string) (*domain.CostRecord, error) {
	costSQL, costArgs, err := squirrel.
		Select(costColumns).
		From(productCostsTable).
		Where(squirrel.Eq{"product_id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(costSQL, costArgs...)

	record, err := r.deserializeCostRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return record, nil
}

func (r *costRepository) SaveOrUpdate(record *domain.CostRecord) error {
	upsertSQL, upsertArgs, err := squirrel.
		Insert(productCostsTable).
		Columns(
			"product_id",
			"supplier_cost",
			"shipping_cost",
			"packaging_cost",
			"other_costs",
			"commission_rate",
			"tax_rate",
			"markup_rate",
			"calculated_price",
		).
		Values(
			record.ProductID,
			record.SupplierCost,
			record.ShippingCost,
			record.PackagingCost,
			record.OtherCosts,
			record.CommissionRate,
			record.TaxRate,
			record.MarkupRate,
			record.CalculatedPrice,
		).
		Suffix(`
			ON CONFLICT (product_id) DO UPDATE SET
				supplier_cost = EXCLUDED.supplier_cost,
				shipping_cost = EXCLUDED.shipping_cost,
				packaging_cost = EXCLUDED.packaging_cost,
				other_costs = EXCLUDED.other_costs,
				commission_rate = EXCLUDED.commission_rate,
				tax_rate = EXCLUDED.tax_rate,
				markup_rate = EXCLUDED.markup_rate,
				calculated_price = EXCLUDED.calculated_price,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de upsert de custos: %w", err)
	}

	_, err = r.conn.Exec(upsertSQL, upsertArgs...)
	return err
}

func (r *costRepository) ListCostRecords() ([]*domain.CostRecord, error) {
	costsSQL, costsArgs, err := squirrel.
		Select(costColumns).
		From(productCostsTable).
		OrderBy("product_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(costsSQL, costsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.CostRecord, 0)
	for rows.Next() {
		record, err := r.deserializeCostRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *costRepository) deserializeCostRecord(scan func(...any) error) (*domain.CostRecord, error) {
	record := &domain.CostRecord{}

	if err := scan(
		&record.ProductID,
		&record.SupplierCost,
		&record.ShippingCost,
		&record.PackagingCost,
		&record.OtherCosts,
		&record.CommissionRate,
		&record.TaxRate,
		&record.MarkupRate,
		&record.CalculatedPrice,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return record, nil
}
