package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta YYYY-MM-DD no fuso local. Texto vazio retorna a data zero.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// SplitDates aceita tanto ?dates=a&dates=b quanto ?dates=a,b
func SplitDates(values []string) []string {
	dates := make([]string, 0, len(values))

	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				dates = append(dates, part)
			}
		}
	}

	return dates
}

// LookbackDates retorna os últimos days dias a partir de ontem, do mais recente ao mais antigo
func LookbackDates(now time.Time, days int) []string {
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, now.AddDate(0, 0, -i-1).Format(time.DateOnly))
	}
	return dates
}
