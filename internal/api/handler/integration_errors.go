package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain/grainclient"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/sales-pulse-api/pkg/apiErrors"
)

// writeIntegrationError traduz falhas vindas dos integradores para a resposta
// HTTP. Credencial ausente é erro de configuração do lado de cá, não falha do
// serviço externo, e responde com o código de credencial próprio.
func writeIntegrationError(w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, hubspotclient.ErrMissingAccessToken):
		apiErrors.WriteError(w, apiErrors.ErrMissingCRMToken, "Token de acesso do CRM não configurado", nil)
	case errors.Is(err, grainclient.ErrMissingAPIKey):
		apiErrors.WriteError(w, apiErrors.ErrMissingRecordingKey, "Chave do serviço de gravações não configurada", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, message, nil)
	}
}
