package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Data válida", func(t *testing.T) {
		date, err := ParseDate("2024-03-01")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("Data inválida retorna erro", func(t *testing.T) {
		_, err := ParseDate("01/03/2024")

		assert.Error(t, err)
	})
}

func TestDayKey(t *testing.T) {
	day := time.Date(2024, 3, 1, 15, 30, 0, 0, time.Local)

	assert.Equal(t, "2024-03-01", DayKey(day))
}

func TestEachDay(t *testing.T) {
	t.Run("Intervalo inclusivo nas duas pontas", func(t *testing.T) {
		start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)
		end := time.Date(2024, 3, 3, 23, 59, 59, 0, time.Local)

		var days []string
		EachDay(start, end, func(day time.Time) {
			days = append(days, day.Format("2006-01-02"))
		})

		assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, days)
	})

	t.Run("Mesmo dia itera uma vez", func(t *testing.T) {
		day := time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local)

		count := 0
		EachDay(day, day, func(time.Time) { count++ })

		assert.Equal(t, 1, count)
	})
}
