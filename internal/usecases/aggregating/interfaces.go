package aggregating

import (
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

// CRMSource é o recorte do integrador do CRM que a agregação consome
type CRMSource interface {
	ListMeetings(filters *domain.MetricsFilters) ([]*domain.CRMMeeting, error)
	ListDeals(filters *domain.MetricsFilters) ([]*domain.Deal, error)
	ListCalls(filters *domain.MetricsFilters) ([]*domain.Call, error)
	ListEmails(filters *domain.MetricsFilters) ([]*domain.Email, error)
}

// TargetResolver resolve a meta aplicável ao mesmo escopo da agregação
type TargetResolver interface {
	Resolve(ownerIDs []string, teamID *string, ownerCount int) (*domain.Target, error)
}
