package seating

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pulse-api/infrastructure/repository"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

// OwnerSource lista os owners do CRM para o vínculo automático de assentos
type OwnerSource interface {
	ListOwners() ([]*domain.Owner, error)
}

type AutoMapResult struct {
	Mapped        int `json:"mapped"`
	AlreadyMapped int `json:"alreadyMapped"`
	Unmatched     int `json:"unmatched"`
}

type Manager interface {
	CreateSeat(seat *domain.Seat) (*domain.Seat, error)
	UpdateSeat(seat *domain.Seat) error
	GetSeatByID(seatID string) (*domain.Seat, error)
	ListSeats() ([]*domain.Seat, error)
	AutoMapOwners() (*AutoMapResult, error)
}

type Service struct {
	seatRepository repository.SeatRepository
	crm            OwnerSource
}

func NewService(seatRepo repository.SeatRepository, crm OwnerSource) Manager {
	return &Service{
		seatRepository: seatRepo,
		crm:            crm,
	}
}

func (s *Service) CreateSeat(seat *domain.Seat) (*domain.Seat, error) {
	if err := validateSeat(seat); err != nil {
		return nil, err
	}

	return s.seatRepository.CreateSeat(seat)
}

func (s *Service) UpdateSeat(seat *domain.Seat) error {
	if seat.ID == "" {
		return fmt.Errorf("o identificador do assento é obrigatório")
	}

	if seat.Role != "" && !seat.Role.Valid() {
		return fmt.Errorf("papel inválido: %s", seat.Role)
	}

	if seat.Status != "" && !seat.Status.Valid() {
		return fmt.Errorf("status inválido: %s", seat.Status)
	}

	return s.seatRepository.UpdateSeat(seat)
}

func (s *Service) GetSeatByID(seatID string) (*domain.Seat, error) {
	return s.seatRepository.GetSeatByID(seatID)
}

func (s *Service) ListSeats() ([]*domain.Seat, error) {
	return s.seatRepository.ListSeats()
}

// AutoMapOwners vincula assentos sem owner a owners do CRM: primeiro por
// e-mail, depois por nome completo e por último por primeiro nome quando não
// há ambiguidade. Assentos já vinculados não são tocados.
func (s *Service) AutoMapOwners() (*AutoMapResult, error) {
	seats, err := s.seatRepository.ListSeats()
	if err != nil {
		return nil, err
	}

	owners, err := s.crm.ListOwners()
	if err != nil {
		return nil, err
	}

	byEmail := make(map[string]*domain.Owner)
	byFullName := make(map[string]*domain.Owner)
	byFirstName := make(map[string][]*domain.Owner)

	for _, owner := range owners {
		if email := normalize(owner.Email); email != "" {
			byEmail[email] = owner
		}
		if fullName := normalize(owner.FullName()); fullName != "" {
			byFullName[fullName] = owner
		}
		if firstName := normalize(owner.FirstName); firstName != "" {
			byFirstName[firstName] = append(byFirstName[firstName], owner)
		}
	}

	result := &AutoMapResult{}

	for _, seat := range seats {
		if seat.HubSpotOwnerID != nil && *seat.HubSpotOwnerID != "" {
			result.AlreadyMapped++
			continue
		}

		owner := matchOwner(seat, byEmail, byFullName, byFirstName)
		if owner == nil {
			result.Unmatched++
			continue
		}

		seat.HubSpotOwnerID = &owner.ID
		if err := s.seatRepository.UpdateSeat(seat); err != nil {
			logrus.WithFields(logrus.Fields{
				"seat_id":  seat.ID,
				"owner_id": owner.ID,
				"error":    err.Error(),
			}).Error("assentos: falha ao salvar o vínculo com o owner")
			return nil, err
		}

		result.Mapped++
	}

	logrus.WithFields(logrus.Fields{
		"mapped":         result.Mapped,
		"already_mapped": result.AlreadyMapped,
		"unmatched":      result.Unmatched,
	}).Info("assentos: vínculo automático concluído")

	return result, nil
}

func matchOwner(
	seat *domain.Seat,
	byEmail map[string]*domain.Owner,
	byFullName map[string]*domain.Owner,
	byFirstName map[string][]*domain.Owner,
) *domain.Owner {
	if owner, ok := byEmail[normalize(seat.Email)]; ok {
		return owner
	}

	if owner, ok := byFullName[normalize(seat.Name)]; ok {
		return owner
	}

	firstName := normalize(firstWord(seat.Name))
	if candidates := byFirstName[firstName]; len(candidates) == 1 {
		return candidates[0]
	}

	return nil
}

func validateSeat(seat *domain.Seat) error {
	if seat.Name == "" {
		return fmt.Errorf("o nome do assento é obrigatório")
	}

	if seat.Email == "" {
		return fmt.Errorf("o e-mail do assento é obrigatório")
	}

	if !seat.Role.Valid() {
		return fmt.Errorf("papel inválido: %s", seat.Role)
	}

	if seat.Status == "" {
		seat.Status = domain.SeatStatusActive
	}

	if !seat.Status.Valid() {
		return fmt.Errorf("status inválido: %s", seat.Status)
	}

	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}
