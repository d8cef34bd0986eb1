package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DayKey retorna a chave de agrupamento diário (YYYY-MM-DD) no fuso local
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// EachDay itera todos os dias do intervalo, inclusivo nas duas pontas
func EachDay(start, end time.Time, fn func(day time.Time)) {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	for !day.After(last) {
		fn(day)
		day = day.AddDate(0, 0, 1)
	}
}
