package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/reconciling"
	"github.com/vfg2006/sales-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pulse-api/pkg/log"
)

// SaveMappingRequest define o corpo do vínculo manual reunião/gravação.
// RecordingRef aceita o ID da gravação ou a URL de compartilhamento.
type SaveMappingRequest struct {
	CRMMeetingID string `json:"crmMeetingId"`
	RecordingRef string `json:"recordingRef"`
}

// GetMappings consulta os vínculos existentes para uma lista de reuniões.
// Sem ids a resposta é uma lista vazia, não um erro.
func GetMappings(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")

		ids := make([]string, 0)
		for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				ids = append(ids, id)
			}
		}

		mappings, err := service.ListMappings(ids)
		if err != nil {
			logger.WithError(err).Error("mappings: erro ao consultar vínculos")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar vínculos", nil)
			return
		}

		results := make([]*domain.MeetingMapping, 0, len(mappings))
		for _, mapping := range mappings {
			results = append(results, mapping)
		}

		if err := json.NewEncoder(w).Encode(map[string]any{"results": results}); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func SaveManualMapping(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")

		var saveRequest SaveMappingRequest
		if err := json.NewDecoder(r.Body).Decode(&saveRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if saveRequest.CRMMeetingID == "" || saveRequest.RecordingRef == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "crmMeetingId e recordingRef são obrigatórios", nil)
			return
		}

		mapping, err := service.SaveManualMapping(saveRequest.CRMMeetingID, saveRequest.RecordingRef)
		if err != nil {
			logger.WithFields(log.Fields{
				"crm_meeting_id": saveRequest.CRMMeetingID,
				"error":          err.Error(),
			}).Error("mappings: erro ao salvar vínculo manual")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar vínculo manual", nil)
			return
		}

		logger.WithFields(log.Fields{
			"crm_meeting_id": mapping.CRMMeetingID,
			"recording_id":   mapping.RecordingID,
		}).Info("mappings: vínculo manual salvo")

		if err := json.NewEncoder(w).Encode(mapping); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func RunAutoMapping(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")

		filters, err := parseMetricsFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		if filters.StartDate == nil || filters.EndDate == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "start_date e end_date são obrigatórios", nil)
			return
		}

		result, err := service.AutoMap(filters)
		if err != nil {
			logger.WithError(err).Error("mappings: erro na reconciliação automática")

			writeIntegrationError(w, err, "Erro ao reconciliar reuniões e gravações")
			return
		}

		logger.WithFields(log.Fields{
			"scanned": result.Scanned,
			"mapped":  result.Mapped,
		}).Info("mappings: reconciliação automática concluída")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
