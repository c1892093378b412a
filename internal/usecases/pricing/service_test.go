package pricing

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_UpdateProductCosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCostRepo := mocks.NewMockCostRepository(ctrl)
	service := NewService(mockCostRepo)

	t.Run("Recalcula e persiste o preço junto com os custos", func(t *testing.T) {
		var saved *domain.CostRecord
		mockCostRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(record *domain.CostRecord) error {
				saved = record
				return nil
			})

		record, err := service.UpdateProductCosts(&domain.UpdateProductCostsRequest{
			ProductID:      "PRD001",
			SupplierCost:   100.0,
			ShippingCost:   10.0,
			PackagingCost:  5.0,
			OtherCosts:     5.0,
			CommissionRate: 15.0,
			TaxRate:        20.0,
			MarkupRate:     25.0,
		})

		assert.NoError(t, err)
		assert.Equal(t, 207.00, record.CalculatedPrice)
		assert.Equal(t, saved, record)
	})

	t.Run("Produto sem id é rejeitado antes de tocar o banco", func(t *testing.T) {
		_, err := service.UpdateProductCosts(&domain.UpdateProductCostsRequest{})
		assert.Error(t, err)
	})

	t.Run("Campos omitidos sobrescrevem com zero", func(t *testing.T) {
		mockCostRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(record *domain.CostRecord) error {
				assert.Zero(t, record.CommissionRate)
				assert.Zero(t, record.MarkupRate)
				return nil
			})

		record, err := service.UpdateProductCosts(&domain.UpdateProductCostsRequest{
			ProductID:    "PRD001",
			SupplierCost: 40.0,
		})

		assert.NoError(t, err)
		assert.Equal(t, 40.00, record.CalculatedPrice)
	})
}

func TestService_GetProductCosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCostRepo := mocks.NewMockCostRepository(ctrl)
	service := NewService(mockCostRepo)

	t.Run("Produto sem registro de custos retorna ErrCostsNotFound", func(t *testing.T) {
		mockCostRepo.EXPECT().GetCostRecord("PRD404").Return(nil, nil)

		_, err := service.GetProductCosts("PRD404")
		assert.ErrorIs(t, err, ErrCostsNotFound)
	})

	t.Run("Registro existente é devolvido como está", func(t *testing.T) {
		expected := &domain.CostRecord{ProductID: "PRD001", SupplierCost: 12.5}
		mockCostRepo.EXPECT().GetCostRecord("PRD001").Return(expected, nil)

		record, err := service.GetProductCosts("PRD001")
		assert.NoError(t, err)
		assert.Equal(t, expected, record)
	})
}

func TestService_ApplyImportMarkup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCostRepo := mocks.NewMockCostRepository(ctrl)
	service := NewService(mockCostRepo)

	t.Run("Preserva as taxas já cadastradas do produto", func(t *testing.T) {
		mockCostRepo.EXPECT().GetCostRecord("PRD001").Return(&domain.CostRecord{
			ProductID:      "PRD001",
			SupplierCost:   80.0,
			CommissionRate: 10.0,
			TaxRate:        20.0,
		}, nil)

		mockCostRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(record *domain.CostRecord) error {
				assert.Equal(t, 10.0, record.CommissionRate)
				assert.Equal(t, 20.0, record.TaxRate)
				return nil
			})

		record, err := service.ApplyImportMarkup("PRD001", 100.0, 30.0)
		assert.NoError(t, err)
		assert.Equal(t, 100.0, record.SupplierCost)
		assert.Equal(t, 30.0, record.MarkupRate)
		// 100 * 1.10 * 1.20 * 1.30 = 171.60
		assert.Equal(t, 171.60, record.CalculatedPrice)
	})

	t.Run("Produto sem custos ganha um registro novo", func(t *testing.T) {
		mockCostRepo.EXPECT().GetCostRecord("PRD002").Return(nil, nil)
		mockCostRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

		record, err := service.ApplyImportMarkup("PRD002", 50.0, 40.0)
		assert.NoError(t, err)
		assert.Equal(t, 70.00, record.CalculatedPrice)
	})

	t.Run("Falha do banco é propagada", func(t *testing.T) {
		mockCostRepo.EXPECT().GetCostRecord("PRD003").
			Return(nil, errors.New("conexão recusada"))

		_, err := service.ApplyImportMarkup("PRD003", 10.0, 10.0)
		assert.Error(t, err)
	})
}

func TestService_PriceFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCostRepo := mocks.NewMockCostRepository(ctrl)
	service := NewService(mockCostRepo)

	t.Run("Recalcula a partir do registro, não do cache", func(t *testing.T) {
		mockCostRepo.EXPECT().GetCostRecord("PRD001").Return(&domain.CostRecord{
			ProductID:       "PRD001",
			SupplierCost:    100.0,
			MarkupRate:      20.0,
			CalculatedPrice: 999.99, // cache desatualizado
		}, nil)

		price, err := service.PriceFor("PRD001")
		assert.NoError(t, err)
		assert.Equal(t, 120.00, price)
	})

	t.Run("Produto sem custos retorna ErrCostsNotFound", func(t *testing.T) {
		mockCostRepo.EXPECT().GetCostRecord("PRD404").Return(nil, nil)

		_, err := service.PriceFor("PRD404")
		assert.ErrorIs(t, err, ErrCostsNotFound)
	})
}
