package reconciling

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	graindomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain/domain"
	"github.com/vfg2006/sales-pulse-api/infrastructure/integrator/grain/grainclient"
	"github.com/vfg2006/sales-pulse-api/infrastructure/repository"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

type Reconciler interface {
	AutoMap(filters *domain.MetricsFilters) (*domain.MappingSyncResult, error)
	SaveManualMapping(crmMeetingID, recordingRef string) (*domain.MeetingMapping, error)
	ListMappings(crmMeetingIDs []string) (map[string]*domain.MeetingMapping, error)
}

type Service struct {
	crm               CRMSource
	recordings        RecordingSource
	mappingRepository repository.MeetingMappingRepository
}

func NewService(
	crm CRMSource,
	recordings RecordingSource,
	mappingRepo repository.MeetingMappingRepository,
) Reconciler {
	return &Service{
		crm:               crm,
		recordings:        recordings,
		mappingRepository: mappingRepo,
	}
}

// AutoMap infere o vínculo mais provável entre reuniões do CRM ainda sem
// mapeamento e gravações da mesma janela, por interseção de e-mails dos
// participantes. É melhor-esforço: ambiguidade vira "pulado", nunca erro, e
// mapeamentos existentes (inclusive manuais) jamais são sobrescritos aqui.
func (s *Service) AutoMap(filters *domain.MetricsFilters) (*domain.MappingSyncResult, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	meetings, err := s.crm.ListMeetings(filters)
	if err != nil {
		return nil, err
	}

	result := &domain.MappingSyncResult{Scanned: len(meetings)}
	if len(meetings) == 0 {
		return result, nil
	}

	meetingIDs := make([]string, 0, len(meetings))
	for _, meeting := range meetings {
		meetingIDs = append(meetingIDs, meeting.ID)
	}

	existing, err := s.mappingRepository.ListByCRMMeetingIDs(meetingIDs)
	if err != nil {
		return nil, err
	}

	unmapped := make([]*domain.CRMMeeting, 0, len(meetings))
	for _, meeting := range meetings {
		if _, ok := existing[meeting.ID]; ok {
			result.AlreadyMapped++
			continue
		}
		unmapped = append(unmapped, meeting)
	}

	if len(unmapped) == 0 {
		return result, nil
	}

	unmappedIDs := make([]string, 0, len(unmapped))
	for _, meeting := range unmapped {
		unmappedIDs = append(unmappedIDs, meeting.ID)
	}

	contacts, err := s.crm.MeetingContacts(unmappedIDs)
	if err != nil {
		return nil, err
	}

	recordings, err := s.recordings.ListRecordings(*filters.StartDate, *filters.EndDate, grainclient.MaxListLimit)
	if err != nil {
		return nil, err
	}

	index := buildEmailIndex(recordings)
	recordingsByID := make(map[string]*graindomain.Recording, len(recordings))
	for i := range recordings {
		recordingsByID[recordings[i].ID] = &recordings[i]
	}

	for _, meeting := range unmapped {
		emails := contactEmails(contacts[meeting.ID])
		if len(emails) == 0 {
			result.MissingContact++
			continue
		}

		candidate, outcome := pickCandidate(meeting, emails, index, recordingsByID)
		switch outcome {
		case pickNone:
			result.Skipped++
			continue
		case pickAmbiguous:
			result.Ambiguous++
			result.Skipped++
			continue
		}

		mapping := &domain.MeetingMapping{
			CRMMeetingID: meeting.ID,
			RecordingID:  candidate.ID,
			ShareURL:     candidate.ShareURL,
			Source:       domain.MappingSourceAuto,
		}

		if err := s.mappingRepository.SaveOrUpdate(mapping); err != nil {
			logrus.WithFields(logrus.Fields{
				"crm_meeting_id": meeting.ID,
				"recording_id":   candidate.ID,
				"error":          err.Error(),
			}).Error("reconciliação: falha ao salvar mapeamento")
			return nil, err
		}

		result.Mapped++
	}

	logrus.WithFields(logrus.Fields{
		"scanned":        result.Scanned,
		"already_mapped": result.AlreadyMapped,
		"mapped":         result.Mapped,
		"skipped":        result.Skipped,
	}).Info("reconciliação: rodada de mapeamento automático concluída")

	return result, nil
}

type pickOutcome int

const (
	pickMatched pickOutcome = iota
	pickNone
	pickAmbiguous
)

// pickCandidate aplica a heurística de desambiguação:
//   - zero candidatos → sem mapeamento;
//   - um candidato → confirmado, independente do horário;
//   - vários → menor distância absoluta ao início da reunião; empate decide
//     pelo menor id em ordem lexicográfica; sem nenhum início interpretável,
//     trata como não mapeável.
func pickCandidate(
	meeting *domain.CRMMeeting,
	emails []string,
	index map[string][]string,
	recordingsByID map[string]*graindomain.Recording,
) (*graindomain.Recording, pickOutcome) {
	candidateIDs := make(map[string]struct{})
	for _, email := range emails {
		for _, recordingID := range index[email] {
			candidateIDs[recordingID] = struct{}{}
		}
	}

	if len(candidateIDs) == 0 {
		return nil, pickNone
	}

	ids := make([]string, 0, len(candidateIDs))
	for id := range candidateIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if len(ids) == 1 {
		return recordingsByID[ids[0]], pickMatched
	}

	start := meeting.EffectiveStart()
	if start == nil {
		return nil, pickAmbiguous
	}

	var best *graindomain.Recording
	var bestDelta time.Duration

	for _, id := range ids {
		recording := recordingsByID[id]
		if recording == nil || recording.Start == nil {
			continue
		}

		delta := recording.Start.Sub(*start)
		if delta < 0 {
			delta = -delta
		}

		// ids já ordenados: o primeiro com o menor delta vence o empate
		if best == nil || delta < bestDelta {
			best = recording
			bestDelta = delta
		}
	}

	if best == nil {
		return nil, pickAmbiguous
	}

	return best, pickMatched
}

func buildEmailIndex(recordings []graindomain.Recording) map[string][]string {
	index := make(map[string][]string)

	for _, recording := range recordings {
		for _, participant := range recording.Participants {
			email := normalizeEmail(participant.Email)
			if email == "" {
				continue
			}
			index[email] = append(index[email], recording.ID)
		}
	}

	return index
}

func contactEmails(contacts []*domain.MeetingContact) []string {
	emails := make([]string, 0, len(contacts))
	seen := make(map[string]struct{})

	for _, contact := range contacts {
		if contact == nil || contact.Email == nil {
			continue
		}

		email := normalizeEmail(*contact.Email)
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}

		seen[email] = struct{}{}
		emails = append(emails, email)
	}

	return emails
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Formato dos links públicos de gravação: /share/recording/{id}/{token}
var shareURLPattern = regexp.MustCompile(`/share/recording/([^/]+)/([^/?#]+)`)

// ParseShareURL extrai o id da gravação de um link de compartilhamento
func ParseShareURL(shareURL string) (string, bool) {
	matches := shareURLPattern.FindStringSubmatch(shareURL)
	if len(matches) < 3 {
		return "", false
	}

	return matches[1], true
}

// SaveManualMapping grava um vínculo confirmado pelo usuário. Aceita o id da
// gravação diretamente ou um link de compartilhamento, e sobrescreve qualquer
// mapeamento anterior da mesma reunião.
func (s *Service) SaveManualMapping(crmMeetingID, recordingRef string) (*domain.MeetingMapping, error) {
	if crmMeetingID == "" {
		return nil, fmt.Errorf("o identificador da reunião do CRM é obrigatório")
	}
	if recordingRef == "" {
		return nil, fmt.Errorf("o identificador ou link da gravação é obrigatório")
	}

	recordingID := recordingRef
	if parsed, ok := ParseShareURL(recordingRef); ok {
		recordingID = parsed
	}

	mapping := &domain.MeetingMapping{
		CRMMeetingID: crmMeetingID,
		RecordingID:  recordingID,
		Source:       domain.MappingSourceManual,
	}

	recording, err := s.recordings.GetRecording(recordingID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"recording_id": recordingID,
			"error":        err.Error(),
		}).Warn("reconciliação: falha ao buscar a gravação do mapeamento manual, salvando sem link")
	} else if recording != nil {
		mapping.ShareURL = recording.ShareURL
	}

	if err := s.mappingRepository.SaveOrUpdate(mapping); err != nil {
		return nil, err
	}

	return mapping, nil
}

// ListMappings devolve os mapeamentos existentes para os ids de reunião
// informados, indexados por id de reunião do CRM.
func (s *Service) ListMappings(crmMeetingIDs []string) (map[string]*domain.MeetingMapping, error) {
	if len(crmMeetingIDs) == 0 {
		return map[string]*domain.MeetingMapping{}, nil
	}

	return s.mappingRepository.ListByCRMMeetingIDs(crmMeetingIDs)
}
