// Package ordersync implementa o motor de reconciliação de pedidos: puxa
// pedidos dos marketplaces, materializa e atualiza os registros locais de
// forma idempotente e notifica os marketplaces de mudanças locais.
package ordersync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace"
	mkdomain "github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/domain"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-manager-api/infrastructure/storefront"
	"github.com/vfg2006/marketplace-manager-api/internal/config"
	"github.com/vfg2006/marketplace-manager-api/internal/domain"
)

type Syncer interface {
	// RunSyncCycle executa um ciclo completo de sincronização para uma
	// conta. Sempre devolve um resumo, mesmo quando o ciclo é abortado.
	RunSyncCycle(ctx context.Context, accountID string) (*domain.SyncSummary, error)

	// RunAllActiveSyncCycles executa ciclos para todas as contas ativas,
	// em paralelo limitado. A falha de uma conta não afeta as demais.
	RunAllActiveSyncCycles(ctx context.Context) ([]*domain.SyncSummary, error)

	// NotifyStatusChange empurra uma mudança de status local para o
	// marketplace de origem do pedido. Não altera estado local e não faz
	// retry: a falha volta para o chamador decidir.
	NotifyStatusChange(ctx context.Context, localOrderID string, status domain.OrderStatus) error

	// NotifyTracking empurra código de rastreio e transportadora para o
	// marketplace de origem do pedido
	NotifyTracking(ctx context.Context, localOrderID, trackingNumber, shippingCompany string) error
}

type Service struct {
	cfg               *config.Config
	clientFactory     marketplace.Factory
	accountRepository repository.AccountRepository
	orderRepository   repository.OrderRepository
	orderSystem       storefront.OrderSystem

	// accountLocks garante no máximo um ciclo por conta neste processo.
	// Corridas entre processos são absorvidas pelo upsert atômico.
	accountLocks sync.Map
}

func NewService(
	cfg *config.Config,
	clientFactory marketplace.Factory,
	accountRepository repository.AccountRepository,
	orderRepository repository.OrderRepository,
	orderSystem storefront.OrderSystem,
) *Service {
	return &Service{
		cfg:               cfg,
		clientFactory:     clientFactory,
		accountRepository: accountRepository,
		orderRepository:   orderRepository,
		orderSystem:       orderSystem,
	}
}

func (s *Service) lockFor(accountID string) *sync.Mutex {
	lock, _ := s.accountLocks.LoadOrStore(accountID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func (s *Service) RunSyncCycle(ctx context.Context, accountID string) (*domain.SyncSummary, error) {
	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar a conta %s", accountID)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if !account.Active {
		return nil, ErrAccountInactive
	}

	lock := s.lockFor(account.ID)
	if !lock.TryLock() {
		return nil, ErrSyncAlreadyRunning
	}
	defer lock.Unlock()

	client, err := s.clientFactory.ClientFor(account)
	if err != nil {
		return nil, err
	}

	summary := &domain.SyncSummary{
		AccountID:   account.ID,
		Marketplace: string(account.Kind),
		StartedAt:   time.Now(),
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"marketplace": account.Kind,
	}).Info("Iniciando ciclo de sincronização de pedidos")

	s.pullOrders(ctx, client, account, summary)

	// O last_sync marca a tentativa, não o sucesso: um ciclo abortado
	// também conta como executado
	syncedAt := time.Now()
	if err := s.accountRepository.UpdateLastSync(account.ID, syncedAt); err != nil {
		logrus.WithError(err).WithField("account_id", account.ID).
			Error("Erro ao atualizar o last_sync da conta")
	}

	summary.Duration = time.Since(summary.StartedAt)

	logrus.WithFields(logrus.Fields{
		"account_id":        account.ID,
		"marketplace":       account.Kind,
		"created":           summary.Created,
		"updated":           summary.Updated,
		"failed":            summary.Failed,
		"unmapped_statuses": summary.UnmappedStatuses,
		"pages":             summary.Pages,
		"aborted":           summary.Aborted,
		"duration":          summary.Duration.String(),
	}).Info("Ciclo de sincronização de pedidos finalizado")

	return summary, nil
}

// pullOrders pagina sequencialmente pelos pedidos remotos até a última
// página ou o teto configurado. O cancelamento do contexto impede novas
// requisições de página, mas a página já buscada é processada até o fim.
func (s *Service) pullOrders(
	ctx context.Context,
	client marketplace.Client,
	account *domain.MarketplaceAccount,
	summary *domain.SyncSummary,
) {
	for page := 0; page < s.cfg.OrderSync.MaxPages; page++ {
		if ctx.Err() != nil {
			logrus.WithField("account_id", account.ID).
				Warn("Contexto cancelado, interrompendo a busca de novas páginas")
			summary.Aborted = true
			return
		}

		ordersPage, err := client.ListOrders(ctx, mkdomain.ListOrdersParams{
			Page:     page,
			PageSize: s.cfg.OrderSync.PageSize,
		})
		if err != nil {
			// Falha de página é falha da conta inteira: sem a página não
			// há como garantir o avanço da paginação
			summary.Aborted = true
			summary.RecordError(fmt.Sprintf("erro ao buscar a página %d: %v", page, err))

			kind, _ := mkdomain.ErrorKind(err)
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":  account.ID,
				"marketplace": account.Kind,
				"page":        page,
				"error_kind":  kind,
			}).Error("Ciclo abortado por falha na busca de página")
			return
		}

		summary.Pages++

		for i := range ordersPage.Orders {
			remoteOrder := &ordersPage.Orders[i]
			if err := s.reconcileOrder(ctx, client, account, remoteOrder, summary); err != nil {
				summary.RecordError(fmt.Sprintf("pedido %s: %v", remoteOrder.ExternalOrderID, err))

				logrus.WithError(err).WithFields(logrus.Fields{
					"account_id":        account.ID,
					"external_order_id": remoteOrder.ExternalOrderID,
				}).Error("Erro ao reconciliar pedido")
			}
		}

		if !ordersPage.HasMore {
			return
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"max_pages":  s.cfg.OrderSync.MaxPages,
	}).Warn("Teto de páginas atingido, o restante fica para o próximo ciclo")
}

// reconcileOrder aplica um pedido remoto ao estado local. A operação é
// idempotente: o mesmo pedido remoto aplicado duas vezes produz exatamente
// o mesmo estado, sem linhas novas.
func (s *Service) reconcileOrder(
	ctx context.Context,
	client marketplace.Client,
	account *domain.MarketplaceAccount,
	remoteOrder *mkdomain.RemoteOrder,
	summary *domain.SyncSummary,
) error {
	// Sem o identificador externo não existe chave de unicidade: persistir
	// colapsaria todos esses pedidos numa única linha fantasma
	if remoteOrder.ExternalOrderID == "" {
		return errors.New("pedido remoto sem external_order_id")
	}

	status, ok := client.TranslateRemoteStatus(remoteOrder.Status)
	if !ok {
		// Valor fora da tabela da variante nunca é erro: cai no início do
		// ciclo de vida e fica registrado para mapeamento futuro
		status = domain.OrderStatusPending
		summary.UnmappedStatuses++

		logrus.WithFields(logrus.Fields{
			"marketplace":   account.Kind,
			"remote_status": remoteOrder.Status,
		}).Warn("Status remoto sem tradução, usando pending")
	}

	record := &domain.MarketplaceOrder{
		MarketplaceID:   account.ID,
		ExternalOrderID: remoteOrder.ExternalOrderID,
		CustomerName:    remoteOrder.CustomerName,
		CustomerEmail:   remoteOrder.CustomerEmail,
		TotalAmount:     remoteOrder.TotalAmount,
		Currency:        remoteOrder.Currency,
		Status:          status,
		RemoteStatus:    remoteOrder.Status,
	}

	persisted, created, err := s.orderRepository.UpsertByKey(record)
	if err != nil {
		return err
	}

	if persisted.LocalOrderID == nil {
		// Caminho de inserção, ou reconciliação anterior que falhou antes
		// de materializar o pedido local
		if err := s.materializeLocalOrder(ctx, account, remoteOrder, persisted, status); err != nil {
			return err
		}
	} else if err := s.orderSystem.SetOrderStatus(ctx, *persisted.LocalOrderID, status); err != nil {
		return err
	}

	// Os contadores só avançam com o pedido inteiramente reconciliado: um
	// pedido que falhou depois do upsert conta apenas como falha
	if created {
		summary.Created++
	} else {
		summary.Updated++
	}

	return nil
}

func (s *Service) materializeLocalOrder(
	ctx context.Context,
	account *domain.MarketplaceAccount,
	remoteOrder *mkdomain.RemoteOrder,
	record *domain.MarketplaceOrder,
	status domain.OrderStatus,
) error {
	items := make([]domain.OrderLineSpec, 0, len(remoteOrder.Items))
	for _, item := range remoteOrder.Items {
		items = append(items, domain.OrderLineSpec{
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	localOrderID, err := s.orderSystem.CreateOrder(ctx, &domain.LocalOrderSpec{
		Marketplace:   account.Kind,
		CustomerName:  remoteOrder.CustomerName,
		CustomerEmail: remoteOrder.CustomerEmail,
		CustomerPhone: remoteOrder.CustomerPhone,
		Items:         items,
		ShippingAddress: domain.OrderAddress{
			Address:  remoteOrder.ShippingAddress.Address,
			City:     remoteOrder.ShippingAddress.City,
			State:    remoteOrder.ShippingAddress.State,
			Postcode: remoteOrder.ShippingAddress.Postcode,
			Country:  remoteOrder.ShippingAddress.Country,
		},
		ShippingMethod: remoteOrder.ShippingMethod,
		ShippingCost:   remoteOrder.ShippingCost,
		Currency:       remoteOrder.Currency,
		Status:         status,
	})
	if err != nil {
		return errors.Wrap(err, "erro ao materializar o pedido local")
	}

	if err := s.orderRepository.SetLocalOrderID(record.ID, localOrderID); err != nil {
		return errors.Wrap(err, "erro ao vincular o pedido local")
	}

	return nil
}

func (s *Service) RunAllActiveSyncCycles(ctx context.Context) ([]*domain.SyncSummary, error) {
	accounts, err := s.accountRepository.ListAccounts(true)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar as contas ativas")
	}

	maxWorkers := s.cfg.OrderSync.MaxConcurrentJobs
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		summaries = make([]*domain.SyncSummary, 0, len(accounts))
		semaphore = make(chan struct{}, maxWorkers)
	)

	for _, account := range accounts {
		wg.Add(1)
		go func(account *domain.MarketplaceAccount) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			summary, err := s.RunSyncCycle(ctx, account.ID)
			if err != nil {
				logrus.WithError(err).WithField("account_id", account.ID).
					Error("Ciclo de sincronização da conta falhou")

				summary = &domain.SyncSummary{
					AccountID:   account.ID,
					Marketplace: string(account.Kind),
					Aborted:     true,
					StartedAt:   time.Now(),
				}
				summary.RecordError(err.Error())
			}

			mu.Lock()
			summaries = append(summaries, summary)
			mu.Unlock()
		}(account)
	}

	wg.Wait()

	return summaries, nil
}

func (s *Service) NotifyStatusChange(ctx context.Context, localOrderID string, status domain.OrderStatus) error {
	client, order, err := s.clientForLocalOrder(localOrderID)
	if err != nil {
		return err
	}

	if err := client.UpdateOrderStatus(ctx, order.ExternalOrderID, status); err != nil {
		return errors.Wrapf(err, "erro ao notificar o marketplace do status do pedido %s", localOrderID)
	}

	return nil
}

func (s *Service) NotifyTracking(ctx context.Context, localOrderID, trackingNumber, shippingCompany string) error {
	client, order, err := s.clientForLocalOrder(localOrderID)
	if err != nil {
		return err
	}

	if err := client.UpdateTracking(ctx, order.ExternalOrderID, trackingNumber, shippingCompany); err != nil {
		return errors.Wrapf(err, "erro ao enviar o rastreio do pedido %s", localOrderID)
	}

	return nil
}

func (s *Service) clientForLocalOrder(localOrderID string) (marketplace.Client, *domain.MarketplaceOrder, error) {
	order, err := s.orderRepository.GetByLocalOrderID(localOrderID)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao buscar o vínculo do pedido %s", localOrderID)
	}
	if order == nil {
		return nil, nil, ErrOrderNotLinked
	}

	account, err := s.accountRepository.GetAccountByID(order.MarketplaceID)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao buscar a conta %s", order.MarketplaceID)
	}
	if account == nil {
		return nil, nil, ErrAccountNotFound
	}

	client, err := s.clientFactory.ClientFor(account)
	if err != nil {
		return nil, nil, err
	}

	return client, order, nil
}
