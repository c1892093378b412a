package domain

import (
	"time"
)

// MaxSyncErrorMessages limita quantas mensagens de erro são mantidas em um
// resumo de ciclo. Os erros seguintes só incrementam o contador.
const MaxSyncErrorMessages = 10

// SyncSummary é o resumo de um ciclo de sincronização de pedidos para uma
// conta de marketplace. Um ciclo sempre termina com um resumo, mesmo em
// caso de falha da conta.
type SyncSummary struct {
	AccountID        string        `json:"account_id"`
	Marketplace      string        `json:"marketplace"`
	Created          int           `json:"created"`
	Updated          int           `json:"updated"`
	Failed           int           `json:"failed"`
	UnmappedStatuses int           `json:"unmapped_statuses"`
	Pages            int           `json:"pages"`
	Errors           []string      `json:"errors,omitempty"`
	Aborted          bool          `json:"aborted"`
	StartedAt        time.Time     `json:"started_at"`
	Duration         time.Duration `json:"duration"`
}

// RecordError contabiliza uma falha e guarda a mensagem até o limite
func (s *SyncSummary) RecordError(msg string) {
	s.Failed++
	if len(s.Errors) < MaxSyncErrorMessages {
		s.Errors = append(s.Errors, msg)
	}
}

// BatchPushResult é o resultado do envio de um lote de produtos para um
// marketplace. Falhas por item fazem parte do resultado, não são erro.
type BatchPushResult struct {
	Sent          int      `json:"sent"`
	Succeeded     int      `json:"succeeded"`
	Failed        int      `json:"failed"`
	PerItemErrors []string `json:"per_item_errors,omitempty"`
}
