package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/marketplace-manager-api/pkg/apiErrors"
)

// GetProfitReport devolve o relatório de lucro dos pedidos do período
func GetProfitReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		since, until, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido: use datas no formato AAAA-MM-DD", nil)
			return
		}

		report, err := service.ProfitReport(since, until)
		if err != nil {
			logrus.Error("Error building profit report:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório de lucro", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
