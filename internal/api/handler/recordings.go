package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain"
	"github.com/vfg2006/sales-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pulse-api/pkg/log"
	"github.com/vfg2006/sales-pulse-api/pkg/utils"
)

const defaultRecordingsLimit = 100

// RecordingDetailsRequest lista as gravações cujo detalhamento será buscado
type RecordingDetailsRequest struct {
	RecordingIDs []string `json:"recordingIds"`
}

func ListRecordings(service grain.GrainIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		if r.URL.Query().Get("start_date") == "" || r.URL.Query().Get("end_date") == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "start_date e end_date são obrigatórios", nil)
			return
		}

		limit := defaultRecordingsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		// A janela cobre os dias inteiros nas duas pontas
		end := endDate.Add(24*time.Hour - time.Second)

		recordings, err := service.ListRecordings(*startDate, end, limit)
		if err != nil {
			logger.WithError(err).Error("recordings: erro ao listar gravações")

			writeIntegrationError(w, err, "Erro ao consultar gravações")
			return
		}

		logger.WithField("total", len(recordings)).Info("recordings: gravações retornadas")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(recordings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetRecordingDetails(service grain.GrainIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")

		var detailsRequest RecordingDetailsRequest
		if err := json.NewDecoder(r.Body).Decode(&detailsRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if len(detailsRequest.RecordingIDs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "recordingIds é obrigatório", nil)
			return
		}

		details, err := service.GetRecordingDetails(detailsRequest.RecordingIDs)
		if err != nil {
			logger.WithError(err).Error("recordings: erro ao detalhar gravações")

			writeIntegrationError(w, err, "Erro ao detalhar gravações")
			return
		}

		if err := json.NewEncoder(w).Encode(details); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
