package ordersync

import (
	"errors"
)

// Erros específicos do contexto de sincronização de pedidos
var (
	ErrAccountNotFound    = errors.New("conta de marketplace não encontrada")
	ErrAccountInactive    = errors.New("conta de marketplace inativa")
	ErrSyncAlreadyRunning = errors.New("já existe um ciclo de sincronização em execução para a conta")
	ErrOrderNotLinked     = errors.New("pedido local sem vínculo com marketplace")
)
