package meetings

import (
	graindomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain/domain"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

type CRMSource interface {
	ListMeetings(filters *domain.MetricsFilters) ([]*domain.CRMMeeting, error)
	GetMeetingByID(meetingID string) (*domain.CRMMeeting, error)
	ListOwners() ([]*domain.Owner, error)
	MeetingContacts(meetingIDs []string) (map[string][]*domain.MeetingContact, error)
	MeetingDeals(meetingIDs []string) (map[string][]string, error)
	MeetingEngagements(meetingIDs []string) (map[string][]string, error)
	GetDealsByIDs(dealIDs []string) ([]*domain.Deal, error)
	GetEngagementOutcome(engagementID string) (*string, error)
	UpdateMeeting(meetingID string, properties map[string]*string) error
}

type RecordingSource interface {
	GetCoachingFeedback(recordingID string) (*graindomain.CoachingFeedback, error)
}
