package hubspot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	hubspotdomain "github.com/vfg2006/sales-pulse-api/infrastructure/integrator/hubspot/domain"
	"github.com/vfg2006/sales-pulse-api/internal/domain"
)

func stringPtr(s string) *string { return &s }

func TestBuildFilters(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)

	t.Run("Vários owners usam IN", func(t *testing.T) {
		built := buildFilters("hubspot_owner_id", "hs_timestamp", &domain.MetricsFilters{
			OwnerIDs:  []string{"owner-1", "owner-2"},
			StartDate: &start,
			EndDate:   &end,
		})

		assert.Len(t, built, 3)
		assert.Equal(t, hubspotdomain.OperatorIN, built[0].Operator)
		assert.Equal(t, []string{"owner-1", "owner-2"}, built[0].Values)
		assert.Equal(t, hubspotdomain.OperatorGTE, built[1].Operator)
		assert.Equal(t, "1709251200000", built[1].Value)
		assert.Equal(t, hubspotdomain.OperatorLTE, built[2].Operator)
	})

	t.Run("Owner único usa EQ", func(t *testing.T) {
		built := buildFilters("hubspot_owner_id", "hs_timestamp", &domain.MetricsFilters{
			OwnerIDs: []string{"owner-1"},
		})

		assert.Len(t, built, 1)
		assert.Equal(t, hubspotdomain.OperatorEQ, built[0].Operator)
		assert.Equal(t, "owner-1", built[0].Value)
	})

	t.Run("Sem filtros devolve vazio", func(t *testing.T) {
		assert.Empty(t, buildFilters("hubspot_owner_id", "hs_timestamp", nil))
		assert.Empty(t, buildFilters("hubspot_owner_id", "hs_timestamp", &domain.MetricsFilters{}))
	})
}

func TestParseTimestamp(t *testing.T) {
	t.Run("Epoch em milissegundos", func(t *testing.T) {
		parsed := parseTimestamp("1709251200000")

		assert.NotNil(t, parsed)
		assert.Equal(t, int64(1709251200000), parsed.UnixMilli())
	})

	t.Run("RFC3339", func(t *testing.T) {
		parsed := parseTimestamp("2024-03-01T14:00:00Z")

		assert.NotNil(t, parsed)
		assert.Equal(t, time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC), parsed.UTC())
	})

	t.Run("Valor vazio ou inválido", func(t *testing.T) {
		assert.Nil(t, parseTimestamp(""))
		assert.Nil(t, parseTimestamp("  "))
		assert.Nil(t, parseTimestamp("ontem"))
	})
}

func TestFlattenProperties(t *testing.T) {
	flat := flattenProperties(map[string]*string{
		"lead_source":      stringPtr("Inbound"),
		"hubspot_owner_id": nil,
	})

	assert.Equal(t, "Inbound", flat["lead_source"])

	// nil vira string vazia: é assim que a API limpa uma propriedade
	value, ok := flat["hubspot_owner_id"]
	assert.True(t, ok)
	assert.Equal(t, "", value)
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, optionalString(""))
	assert.Equal(t, "Inbound", *optionalString("Inbound"))
}

func TestStageMatching(t *testing.T) {
	assert.True(t, stageIsWon(hubspotdomain.PipelineStage{ID: "closedwon", Label: "Fechado"}))
	assert.True(t, stageIsWon(hubspotdomain.PipelineStage{ID: "stage-9", Label: "Closed Won"}))
	assert.False(t, stageIsWon(hubspotdomain.PipelineStage{ID: "stage-1", Label: "Discovery"}))

	assert.True(t, stageIsLost(hubspotdomain.PipelineStage{ID: "closedlost", Label: "Perdido"}))
	assert.False(t, stageIsLost(hubspotdomain.PipelineStage{ID: "stage-2", Label: "Negotiation"}))
}
