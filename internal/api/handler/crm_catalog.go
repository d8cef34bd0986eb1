package handler

import (
	"net/http"

	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/sales-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pulse-api/pkg/log"
)

func ListOwners(service hubspot.HubSpotIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		owners, err := service.ListOwners()
		if err != nil {
			logger.WithError(err).Error("owners: erro ao listar responsáveis")

			writeIntegrationError(w, err, "Erro ao consultar responsáveis no CRM")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(owners); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ListPipelines(service hubspot.HubSpotIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		pipelines, err := service.ListPipelines()
		if err != nil {
			logger.WithError(err).Error("pipelines: erro ao listar pipelines")

			writeIntegrationError(w, err, "Erro ao consultar pipelines no CRM")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(pipelines); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func ListSequences(service hubspot.HubSpotIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sequences, err := service.ListSequences()
		if err != nil {
			logger.WithError(err).Error("sequences: erro ao listar sequências")

			writeIntegrationError(w, err, "Erro ao consultar sequências no CRM")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sequences); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
