package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/sales-pulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

const upsertMappingSQL = `(?s)INSERT INTO meeting_mappings .+ON CONFLICT \(crm_meeting_id\) DO UPDATE SET.+recording_id = EXCLUDED\.recording_id`

func TestSaveOrUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMeetingMappingRepository(&postgres.Connection{DB: db})

	shareURL := "https://grain.com/share/recording/rec-1/token"
	mock.ExpectExec(upsertMappingSQL).
		WithArgs(sqlmock.AnyArg(), "meet-1", "rec-1", &shareURL, "auto").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SaveOrUpdate(&domain.MeetingMapping{
		CRMMeetingID: "meet-1",
		RecordingID:  "rec-1",
		ShareURL:     &shareURL,
		Source:       domain.MappingSourceAuto,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveOrUpdateSegundaGravacaoSobrescreve(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewMeetingMappingRepository(&postgres.Connection{DB: db})

	firstURL := "https://grain.com/share/recording/rec-1/token"
	mock.ExpectExec(upsertMappingSQL).
		WithArgs(sqlmock.AnyArg(), "meet-1", "rec-1", &firstURL, "auto").
		WillReturnResult(sqlmock.NewResult(0, 1))

	secondURL := "https://grain.com/share/recording/rec-2/token"
	mock.ExpectExec(upsertMappingSQL).
		WithArgs(sqlmock.AnyArg(), "meet-1", "rec-2", &secondURL, "manual").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SaveOrUpdate(&domain.MeetingMapping{
		CRMMeetingID: "meet-1",
		RecordingID:  "rec-1",
		ShareURL:     &firstURL,
		Source:       domain.MappingSourceAuto,
	})
	assert.NoError(t, err)

	// Reaponta a mesma reunião para outra gravação: o comando continua sendo o
	// upsert, então a linha existente é atualizada em vez de duplicada.
	err = repo.SaveOrUpdate(&domain.MeetingMapping{
		CRMMeetingID: "meet-1",
		RecordingID:  "rec-2",
		ShareURL:     &secondURL,
		Source:       domain.MappingSourceManual,
	})
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
