// Package reporting consolida os pedidos sincronizados com os registros de
// custo em um relatório de lucro por período.
package reporting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/storefront"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
	"github.com/vfg2006/marketplace-manager-api/pkg/utils"
)

type Reporter interface {
	// ProfitReport calcula receita, custo, comissão e lucro dos pedidos
	// sincronizados dentro do período
	ProfitReport(since, until time.Time) (*domain.ProfitReport, error)
}

type Service struct {
	orderRepository repository.OrderRepository
	costRepository  repository.CostRepository
	orderSystem     storefront.OrderSystem
}

func NewService(
	orderRepository repository.OrderRepository,
	costRepository repository.CostRepository,
	orderSystem storefront.OrderSystem,
) Reporter {
	return &Service{
		orderRepository: orderRepository,
		costRepository:  costRepository,
		orderSystem:     orderSystem,
	}
}

func (s *Service) ProfitReport(since, until time.Time) (*domain.ProfitReport, error) {
	orders, err := s.orderRepository.ListOrders(since, until)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar os pedidos do período")
	}

	report := &domain.ProfitReport{
		Since:  since,
		Until:  until,
		Orders: make([]domain.OrderProfit, 0, len(orders)),
	}

	for _, order := range orders {
		line, err := s.orderProfit(order)
		if err != nil {
			logrus.WithError(err).WithField("order_id", order.ID).
				Warn("Erro ao calcular o lucro do pedido, pedido ignorado no relatório")
			continue
		}

		report.Orders = append(report.Orders, *line)
		report.TotalRevenue += line.Revenue
		report.TotalCost += line.Cost
		report.TotalCommission += line.Commission
		report.TotalProfit += line.Profit
	}

	if report.TotalRevenue > 0 {
		report.MarginPercent = utils.RoundWithTwoDecimalPlace(report.TotalProfit / report.TotalRevenue * 100)
	}

	return report, nil
}

// orderProfit calcula a linha de um pedido. Itens sem vínculo de produto ou
// sem custos cadastrados contribuem com custo zero: o relatório superestima
// o lucro em vez de omitir o pedido.
func (s *Service) orderProfit(order *domain.MarketplaceOrder) (*domain.OrderProfit, error) {
	line := &domain.OrderProfit{
		OrderID:     order.ID,
		Marketplace: order.MarketplaceID,
		Revenue:     order.TotalAmount,
	}

	if order.LocalOrderID != nil {
		items, err := s.orderSystem.ListOrderItems(*order.LocalOrderID)
		if err != nil {
			return nil, err
		}

		for _, item := range items {
			if item.ProductID == nil {
				continue
			}

			record, err := s.costRepository.GetCostRecord(*item.ProductID)
			if err != nil {
				return nil, err
			}
			if record == nil {
				continue
			}

			unitCost := record.SupplierCost + record.ShippingCost + record.PackagingCost + record.OtherCosts
			line.Cost += unitCost * float64(item.Quantity)
			line.Commission += item.LineTotal * record.CommissionRate / 100
		}
	}

	line.Cost = utils.RoundWithTwoDecimalPlace(line.Cost)
	line.Commission = utils.RoundWithTwoDecimalPlace(line.Commission)
	line.Profit = utils.RoundWithTwoDecimalPlace(line.Revenue - line.Cost - line.Commission)
	if line.Revenue > 0 {
		line.MarginPercent = utils.RoundWithTwoDecimalPlace(line.Profit / line.Revenue * 100)
	}

	return line, nil
}

