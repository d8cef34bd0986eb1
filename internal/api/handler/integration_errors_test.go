package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain/grainclient"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/hubspotclient"
	"github.com/vfg2006/sales-pulse-api/pkg/apiErrors"
)

func TestWriteIntegrationError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectedHTTP int
	}{
		{
			name:         "Token do CRM ausente responde com codigo de credencial",
			err:          hubspotclient.ErrMissingAccessToken,
			expectedCode: apiErrors.ErrMissingCRMToken,
			expectedHTTP: http.StatusUnauthorized,
		},
		{
			name:         "Chave de gravações ausente responde com codigo de credencial",
			err:          grainclient.ErrMissingAPIKey,
			expectedCode: apiErrors.ErrMissingRecordingKey,
			expectedHTTP: http.StatusUnauthorized,
		},
		{
			name:         "Sentinela embrulhada ainda é reconhecida",
			err:          errors.Wrap(hubspotclient.ErrMissingAccessToken, "falha ao listar reuniões"),
			expectedCode: apiErrors.ErrMissingCRMToken,
			expectedHTTP: http.StatusUnauthorized,
		},
		{
			name:         "Falha genérica do integrador responde como serviço externo",
			err:          errors.New("timeout"),
			expectedCode: apiErrors.ErrExternalService,
			expectedHTTP: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			writeIntegrationError(rec, tt.err, "Erro ao consultar o CRM")

			assert.Equal(t, tt.expectedHTTP, rec.Code)

			var body apiErrors.APIError
			err := json.NewDecoder(rec.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, body.Code)
		})
	}
}
