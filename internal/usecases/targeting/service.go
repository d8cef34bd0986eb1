package targeting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pulse-api/infrastructure/repository"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

// Resolver resolve a meta aplicável a um conjunto de owners, sem efeito
// colateral. A gravação da meta global é uma operação separada.
type Resolver interface {
	Resolve(ownerIDs []string, teamID *string, ownerCount int) (*domain.Target, error)
	SaveGlobal(target *domain.Target) error
}

type Service struct {
	targetRepository repository.TargetRepository
}

func NewService(targetRepo repository.TargetRepository) Resolver {
	return &Service{
		targetRepository: targetRepo,
	}
}

// Resolve segue a ordem: meta do owner (só com exatamente um owner
// selecionado), meta do time, meta global e por fim a constante embutida.
// Com mais de um owner, as metas de contagem da meta global (ou padrão)
// escalam linearmente pelo número de owners; o valor por conversão não.
func (s *Service) Resolve(ownerIDs []string, teamID *string, ownerCount int) (*domain.Target, error) {
	if ownerCount <= 0 {
		ownerCount = len(ownerIDs)
	}

	if len(ownerIDs) == 1 {
		target, err := s.targetRepository.FindByOwner(ownerIDs[0])
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"owner_id": ownerIDs[0],
				"error":    err.Error(),
			}).Error("metas: falha ao buscar meta do owner")
			return nil, err
		}

		if target != nil {
			return target, nil
		}
	}

	if teamID != nil && *teamID != "" {
		target, err := s.targetRepository.FindByTeam(*teamID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"team_id": *teamID,
				"error":   err.Error(),
			}).Error("metas: falha ao buscar meta do time")
			return nil, err
		}

		if target != nil {
			return target, nil
		}
	}

	target, err := s.targetRepository.FindGlobal()
	if err != nil {
		logrus.WithError(err).Error("metas: falha ao buscar meta global")
		return nil, err
	}

	if target == nil {
		target = domain.DefaultTarget()
	}

	return target.ScaleForOwners(ownerCount), nil
}

func (s *Service) SaveGlobal(target *domain.Target) error {
	if err := s.targetRepository.SaveGlobal(target); err != nil {
		logrus.WithError(err).Error("metas: falha ao salvar meta global")
		return err
	}

	return nil
}
