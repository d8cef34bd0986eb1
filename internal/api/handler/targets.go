package handler

import (
	"net/http"

	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pulse-api/pkg/log"
)

// UpdateTargetRequest define o corpo aceito na atualização das metas globais
type UpdateTargetRequest struct {
	MeetingsHeld     int     `json:"meetingsHeld"`
	QualifiedOpps    int     `json:"qualifiedOpps"`
	Conversions      int     `json:"conversions"`
	MRRPerConversion float64 `json:"mrrPerConversion"`
}

func GetTargets(service targeting.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		target, err := service.Resolve(nil, nil, 1)
		if err != nil {
			logger.WithError(err).Error("targets: erro ao resolver metas")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar metas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(target); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateTargets(service targeting.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")

		var updateRequest UpdateTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if updateRequest.MeetingsHeld < 0 || updateRequest.QualifiedOpps < 0 ||
			updateRequest.Conversions < 0 || updateRequest.MRRPerConversion < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Metas não podem ser negativas", nil)
			return
		}

		target := &domain.Target{
			Scope:            domain.TargetScopeGlobal,
			MeetingsHeld:     updateRequest.MeetingsHeld,
			QualifiedOpps:    updateRequest.QualifiedOpps,
			Conversions:      updateRequest.Conversions,
			MRRPerConversion: updateRequest.MRRPerConversion,
		}

		if err := service.SaveGlobal(target); err != nil {
			logger.WithError(err).Error("targets: erro ao salvar metas globais")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar metas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"meetings_held":  target.MeetingsHeld,
			"qualified_opps": target.QualifiedOpps,
			"conversions":    target.Conversions,
		}).Info("targets: metas globais atualizadas")

		if err := json.NewEncoder(w).Encode(target); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
