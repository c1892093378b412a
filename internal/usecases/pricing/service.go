package pricing

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

var ErrCostsNotFound = errors.New("custos não cadastrados para o produto")

type Pricer interface {
	// UpdateProductCosts sobrescreve o registro de custos do produto,
	// recalcula o preço e persiste o resultado
	UpdateProductCosts(req *domain.UpdateProductCostsRequest) (*domain.CostRecord, error)
	GetProductCosts(productID string) (*domain.CostRecord, error)
	// ApplyImportMarkup grava os custos mínimos de um produto recém
	// importado (custo do fornecedor + margem) preservando as demais taxas
	// já cadastradas
	ApplyImportMarkup(productID string, supplierCost, markupRate float64) (*domain.CostRecord, error)
	// PriceFor devolve o preço calculado do produto, recalculando a partir
	// do registro de custos
	PriceFor(productID string) (float64, error)
}

type Service struct {
	costRepository repository.CostRepository
}

func NewService(costRepository repository.CostRepository) Pricer {
	return &Service{
		costRepository: costRepository,
	}
}

func (s *Service) UpdateProductCosts(req *domain.UpdateProductCostsRequest) (*domain.CostRecord, error) {
	if req.ProductID == "" {
		return nil, errors.New("o id do produto é obrigatório")
	}

	record := &domain.CostRecord{
		ProductID:      req.ProductID,
		SupplierCost:   req.SupplierCost,
		ShippingCost:   req.ShippingCost,
		PackagingCost:  req.PackagingCost,
		CommissionRate: req.CommissionRate,
		TaxRate:        req.TaxRate,
		OtherCosts:     req.OtherCosts,
		MarkupRate:     req.MarkupRate,
	}
	record.CalculatedPrice = CalculatePrice(record)

	if err := s.costRepository.SaveOrUpdate(record); err != nil {
		return nil, errors.Wrapf(err, "erro ao salvar os custos do produto %s", req.ProductID)
	}

	logrus.WithFields(logrus.Fields{
		"product_id":       record.ProductID,
		"calculated_price": record.CalculatedPrice,
	}).Info("Custos do produto atualizados")

	return record, nil
}

func (s *Service) GetProductCosts(productID string) (*domain.CostRecord, error) {
	record, err := s.costRepository.GetCostRecord(productID)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar os custos do produto %s", productID)
	}

	if record == nil {
		return nil, ErrCostsNotFound
	}

	return record, nil
}

func (s *Service) ApplyImportMarkup(productID string, supplierCost, markupRate float64) (*domain.CostRecord, error) {
	record, err := s.costRepository.GetCostRecord(productID)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar os custos do produto %s", productID)
	}

	if record == nil {
		record = &domain.CostRecord{ProductID: productID}
	}

	record.SupplierCost = supplierCost
	record.MarkupRate = markupRate
	record.CalculatedPrice = CalculatePrice(record)

	if err := s.costRepository.SaveOrUpdate(record); err != nil {
		return nil, errors.Wrapf(err, "erro ao salvar os custos do produto %s", productID)
	}

	return record, nil
}

func (s *Service) PriceFor(productID string) (float64, error) {
	record, err := s.GetProductCosts(productID)
	if err != nil {
		return 0, err
	}

	return CalculatePrice(record), nil
}
