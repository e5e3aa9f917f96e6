package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// TruncateToDay descarta a hora e normaliza para meia-noite UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween conta os dias de calendário no intervalo fechado [start, end].
// Usa segundos Unix porque time.Duration satura em ~292 anos.
func DaysBetween(start, end time.Time) int {
	return int((TruncateToDay(end).Unix()-TruncateToDay(start).Unix())/secondsPerDay) + 1
}
