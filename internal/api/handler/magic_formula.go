package handler

import (
	"net/http"

	"github.com/vfg2006/sales-pulse-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pulse-api/pkg/log"
)

func GetMagicFormula(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseMetricsFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("magic-formula: parâmetro de data inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		logger.WithFields(log.Fields{
			"owner_ids": filters.OwnerIDs,
			"team_id":   filters.TeamID,
		}).Info("magic-formula: calculando métricas diárias")

		pulses, err := service.MagicFormula(filters, len(filters.OwnerIDs))
		if err != nil {
			logger.WithError(err).Error("magic-formula: erro ao calcular métricas")

			writeIntegrationError(w, err, "Erro ao consultar dados do CRM")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(pulses); err != nil {
			logger.WithError(err).Error("magic-formula: erro ao codificar resposta")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
