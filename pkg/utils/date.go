package utils

import "time"

// DaysSince retorna o número inteiro de dias (truncado) entre a data
// informada e o instante atual. Valores negativos viram zero.
func DaysSince(t time.Time, now time.Time) int {
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// ParseAdTime interpreta os formatos de data retornados pela Ad Library.
// O campo pode vir como date-only ou como timestamp ISO completo.
func ParseAdTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05-0700",
		time.DateOnly,
	}

	var lastErr error
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return &parsed, nil
		}
		lastErr = err
	}

	return nil, lastErr
}
