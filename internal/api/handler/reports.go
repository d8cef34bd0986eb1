package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pulse-api/pkg/log"
	"github.com/vfg2006/sales-pulse-api/pkg/utils"
)

// GenerateReportRequest define o corpo da geração de relatório.
// Template e TemplateID são mutuamente exclusivos; sem ambos, usa o
// relatório diário embutido.
type GenerateReportRequest struct {
	UserID     string                 `json:"userId"`
	TemplateID string                 `json:"templateId,omitempty"`
	Template   *domain.ReportTemplate `json:"template,omitempty"`
	Day        string                 `json:"day,omitempty"`
	OwnerIDs   []string               `json:"ownerIds,omitempty"`
	TeamID     *string                `json:"teamId,omitempty"`
}

func GenerateReport(service reporting.Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "application/json")

		var generateRequest GenerateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&generateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if generateRequest.UserID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "userId é obrigatório", nil)
			return
		}

		var day *time.Time
		if generateRequest.Day != "" {
			parsed, err := utils.ParseDate(generateRequest.Day)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "day inválido, use o formato YYYY-MM-DD", nil)
				return
			}
			day = parsed
		}

		report, err := service.Generate(reporting.GenerateRequest{
			UserID:     generateRequest.UserID,
			TemplateID: generateRequest.TemplateID,
			Template:   generateRequest.Template,
			Day:        day,
			OwnerIDs:   generateRequest.OwnerIDs,
			TeamID:     generateRequest.TeamID,
		})
		if err != nil {
			logger.WithFields(log.Fields{
				"user_id":     generateRequest.UserID,
				"template_id": generateRequest.TemplateID,
				"error":       err.Error(),
			}).Error("reports: erro ao gerar relatório")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar relatório: "+err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":     report.UserID,
			"template_id": report.TemplateID,
			"day":         report.Day,
		}).Info("reports: relatório gerado")

		if err := json.NewEncoder(w).Encode(report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
