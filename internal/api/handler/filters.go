package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"github.com/vfg2006/sales-pulse-api/pkg/utils"
)

// parseMetricsFilters monta os filtros de métricas a partir da query string.
// Datas ausentes ficam nulas para que o caso de uso aplique o período padrão.
func parseMetricsFilters(r *http.Request) (*domain.MetricsFilters, error) {
	filters := &domain.MetricsFilters{}

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		startDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.StartDate = startDate
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		endDate, err := utils.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.EndDate = endDate
	}

	if raw := r.URL.Query().Get("owner_ids"); raw != "" {
		for _, ownerID := range strings.Split(raw, ",") {
			ownerID = strings.TrimSpace(ownerID)
			if ownerID != "" {
				filters.OwnerIDs = append(filters.OwnerIDs, ownerID)
			}
		}
	}

	if raw := r.URL.Query().Get("team_id"); raw != "" {
		filters.TeamID = &raw
	}

	return filters, nil
}
