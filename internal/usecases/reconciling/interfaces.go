package reconciling

import (
	"time"

	graindomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain/domain"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

type CRMSource interface {
	ListMeetings(filters *domain.MetricsFilters) ([]*domain.CRMMeeting, error)
	MeetingContacts(meetingIDs []string) (map[string][]*domain.MeetingContact, error)
}

type RecordingSource interface {
	ListRecordings(start, end time.Time, limit int) ([]graindomain.Recording, error)
	GetRecording(recordingID string) (*graindomain.Recording, error)
}
