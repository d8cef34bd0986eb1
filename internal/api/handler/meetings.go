package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/meetings"
	"github.com/vfg2006/sales-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pulse-api/pkg/log"
)

// UpdateMeetingOutcomeRequest define o corpo da atualização de desfecho.
// Outcome nulo limpa o desfecho no CRM.
type UpdateMeetingOutcomeRequest struct {
	Outcome *string `json:"outcome"`
}

func ListMeetings(service meetings.Lister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseMetricsFilters(r)
		if err != nil {
			logger.WithError(err).Warn("meetings: parâmetro de data inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		enriched, err := service.ListMeetings(filters)
		if err != nil {
			logger.WithError(err).Error("meetings: erro ao listar reuniões")

			writeIntegrationError(w, err, "Erro ao consultar reuniões no CRM")
			return
		}

		logger.WithField("total", len(enriched)).Info("meetings: reuniões enriquecidas retornadas")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(enriched); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateMeetingOutcome(service meetings.Lister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da reunião é obrigatório", nil)
			return
		}

		var updateRequest UpdateMeetingOutcomeRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if err := service.UpdateOutcome(id, updateRequest.Outcome); err != nil {
			logger.WithFields(log.Fields{
				"meeting_id": id,
				"error":      err.Error(),
			}).Error("meetings: erro ao atualizar desfecho")

			writeIntegrationError(w, err, "Erro ao atualizar desfecho no CRM")
			return
		}

		response := map[string]any{
			"message":    "Desfecho atualizado com sucesso",
			"meeting_id": id,
		}
		json.NewEncoder(w).Encode(response)
	})
}
