package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/sales-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pulse-api/pkg/log"
)

// UpdateDealRequest define os campos editáveis de um negócio.
// Valores nulos são enviados como string vazia para limpar a propriedade.
type UpdateDealRequest struct {
	LeadSource *string `json:"leadSource,omitempty"`
	OwnerID    *string `json:"ownerId,omitempty"`
}

func ListDeals(service hubspot.HubSpotIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseMetricsFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		deals, err := service.ListDeals(filters)
		if err != nil {
			logger.WithError(err).Error("deals: erro ao listar negócios")

			writeIntegrationError(w, err, "Erro ao consultar negócios no CRM")
			return
		}

		logger.WithField("total", len(deals)).Info("deals: negócios retornados")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(deals); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateDeal(service hubspot.HubSpotIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do negócio é obrigatório", nil)
			return
		}

		var updateRequest UpdateDealRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		properties := map[string]*string{}
		if updateRequest.LeadSource != nil {
			properties["lead_source"] = updateRequest.LeadSource
		}
		if updateRequest.OwnerID != nil {
			properties["hubspot_owner_id"] = updateRequest.OwnerID
		}

		if len(properties) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum campo para atualizar", nil)
			return
		}

		if err := service.UpdateDeal(id, properties); err != nil {
			logger.WithFields(log.Fields{
				"deal_id": id,
				"error":   err.Error(),
			}).Error("deals: erro ao atualizar negócio")

			writeIntegrationError(w, err, "Erro ao atualizar negócio no CRM")
			return
		}

		response := map[string]any{
			"message": "Negócio atualizado com sucesso",
			"deal_id": id,
		}
		json.NewEncoder(w).Encode(response)
	})
}
