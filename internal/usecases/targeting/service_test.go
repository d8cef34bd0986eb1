package targeting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-pulse-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestServiceResolve(t *testing.T) {
	teamID := "team-1"

	ownerTarget := &domain.Target{
		Scope:            domain.TargetScopeOwner,
		MeetingsHeld:     7,
		QualifiedOpps:    4,
		Conversions:      3,
		MRRPerConversion: 500.0,
	}

	teamTarget := &domain.Target{
		Scope:            domain.TargetScopeTeam,
		MeetingsHeld:     20,
		QualifiedOpps:    12,
		Conversions:      8,
		MRRPerConversion: 400.0,
	}

	globalTarget := &domain.Target{
		Scope:            domain.TargetScopeGlobal,
		MeetingsHeld:     5,
		QualifiedOpps:    3,
		Conversions:      2,
		MRRPerConversion: 300.0,
	}

	tests := []struct {
		name       string
		ownerIDs   []string
		teamID     *string
		ownerCount int
		setup      func(repo *mocks.MockTargetRepository)
		validate   func(t *testing.T, target *domain.Target)
	}{
		{
			name:       "Exatamente um owner com meta própria usa a meta do owner sem escalar",
			ownerIDs:   []string{"owner-1"},
			ownerCount: 1,
			setup: func(repo *mocks.MockTargetRepository) {
				repo.EXPECT().FindByOwner("owner-1").Return(ownerTarget, nil)
			},
			validate: func(t *testing.T, target *domain.Target) {
				assert.Equal(t, ownerTarget, target)
			},
		},
		{
			name:       "Owner sem meta própria cai para a meta do time",
			ownerIDs:   []string{"owner-1"},
			teamID:     &teamID,
			ownerCount: 1,
			setup: func(repo *mocks.MockTargetRepository) {
				repo.EXPECT().FindByOwner("owner-1").Return(nil, nil)
				repo.EXPECT().FindByTeam("team-1").Return(teamTarget, nil)
			},
			validate: func(t *testing.T, target *domain.Target) {
				assert.Equal(t, teamTarget, target)
			},
		},
		{
			name:       "Vários owners ignoram metas individuais e escalam a global",
			ownerIDs:   []string{"owner-1", "owner-2", "owner-3"},
			ownerCount: 3,
			setup: func(repo *mocks.MockTargetRepository) {
				repo.EXPECT().FindGlobal().Return(globalTarget, nil)
			},
			validate: func(t *testing.T, target *domain.Target) {
				assert.Equal(t, 15, target.MeetingsHeld)
				assert.Equal(t, 9, target.QualifiedOpps)
				assert.Equal(t, 6, target.Conversions)
				// O valor por conversão nunca escala
				assert.Equal(t, 300.0, target.MRRPerConversion)
			},
		},
		{
			name:       "Sem nenhuma meta cadastrada usa a padrão escalada",
			ownerIDs:   []string{"owner-1", "owner-2"},
			ownerCount: 2,
			setup: func(repo *mocks.MockTargetRepository) {
				repo.EXPECT().FindGlobal().Return(nil, nil)
			},
			validate: func(t *testing.T, target *domain.Target) {
				assert.Equal(t, 10, target.MeetingsHeld)
				assert.Equal(t, 6, target.QualifiedOpps)
				assert.Equal(t, 4, target.Conversions)
				assert.Equal(t, 300.0, target.MRRPerConversion)
			},
		},
		{
			name:       "Sem owners usa a meta global sem escalar",
			ownerIDs:   nil,
			ownerCount: 0,
			setup: func(repo *mocks.MockTargetRepository) {
				repo.EXPECT().FindGlobal().Return(globalTarget, nil)
			},
			validate: func(t *testing.T, target *domain.Target) {
				assert.Equal(t, 5, target.MeetingsHeld)
				assert.Equal(t, 2, target.Conversions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockTargetRepository(ctrl)
			tt.setup(mockRepo)

			service := NewService(mockRepo)

			target, err := service.Resolve(tt.ownerIDs, tt.teamID, tt.ownerCount)

			assert.NoError(t, err)
			tt.validate(t, target)
		})
	}
}

func TestServiceResolveRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTargetRepository(ctrl)
	mockRepo.EXPECT().FindGlobal().Return(nil, errors.New("conexão recusada"))

	service := NewService(mockRepo)

	_, err := service.Resolve(nil, nil, 0)

	assert.Error(t, err)
}

func TestServiceSaveGlobal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTargetRepository(ctrl)

	target := domain.DefaultTarget()
	mockRepo.EXPECT().SaveGlobal(target).Return(nil)

	service := NewService(mockRepo)

	assert.NoError(t, service.SaveGlobal(target))
}
