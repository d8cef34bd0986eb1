package grain

import (
	"time"

	"github.com/sirupsen/logrus"
	graindomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain/domain"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain/grainclient"
	"github.com/vfg2006/sales-pulse-api/internal/config"
)

// RecordingDetails agrega a gravação e o feedback de coaching; qualquer um
// dos dois pode vir nulo quando a busca individual falha.
type RecordingDetails struct {
	RecordingID string                        `json:"recordingId"`
	Recording   *graindomain.Recording        `json:"recording,omitempty"`
	Coaching    *graindomain.CoachingFeedback `json:"coaching,omitempty"`
}

type GrainIntegrator interface {
	ListRecordings(start, end time.Time, limit int) ([]graindomain.Recording, error)
	GetRecording(recordingID string) (*graindomain.Recording, error)
	GetCoachingFeedback(recordingID string) (*graindomain.CoachingFeedback, error)
	GetRecordingDetails(recordingIDs []string) ([]*RecordingDetails, error)
}

type GrainService struct {
	cfg    *config.Config
	Client grainclient.Client
}

func New(cfg *config.Config, client grainclient.Client) GrainIntegrator {
	return &GrainService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GrainService) ListRecordings(start, end time.Time, limit int) ([]graindomain.Recording, error) {
	recordings, err := s.Client.ListRecordings(start, end, limit)
	if err != nil {
		logrus.WithError(err).Error("gravações: falha ao listar gravações")
		return nil, err
	}

	return recordings, nil
}

func (s *GrainService) GetRecording(recordingID string) (*graindomain.Recording, error) {
	return s.Client.GetRecording(recordingID)
}

func (s *GrainService) GetCoachingFeedback(recordingID string) (*graindomain.CoachingFeedback, error) {
	return s.Client.GetCoachingFeedback(recordingID)
}

// GetRecordingDetails busca detalhes e coaching de cada gravação. Falha em um
// item degrada só aquele item para nulo, nunca aborta o lote.
func (s *GrainService) GetRecordingDetails(recordingIDs []string) ([]*RecordingDetails, error) {
	details := make([]*RecordingDetails, 0, len(recordingIDs))

	for _, recordingID := range recordingIDs {
		item := &RecordingDetails{RecordingID: recordingID}

		recording, err := s.Client.GetRecording(recordingID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"recording_id": recordingID,
				"error":        err.Error(),
			}).Warn("gravações: falha ao buscar detalhe da gravação, seguindo sem")
		} else {
			item.Recording = recording
		}

		coaching, err := s.Client.GetCoachingFeedback(recordingID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"recording_id": recordingID,
				"error":        err.Error(),
			}).Warn("gravações: falha ao buscar coaching da gravação, seguindo sem")
		} else {
			item.Coaching = coaching
		}

		details = append(details, item)
	}

	return details, nil
}
