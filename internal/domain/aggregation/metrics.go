package aggregation

import (
	"fmt"
	"strings"
	"time"
)

// Rótulos sentinela do cálculo de recência
const (
	labelNever   = "Never"
	labelUnknown = "Unknown"
)

// Cortes (em dias) dos buckets de recência. Fáceis de errar por um;
// os testes pinam cada fronteira.
const (
	recencyDaysMax  = 7   // 2..7 -> "n days ago"
	recencyWeeksMax = 30  // 8..30 -> "n weeks ago" (div 7)
	recencyMonthMax = 365 // 31..365 -> "n months ago" (div 30)
)

// RecencyLabel converte um timestamp do provedor em um rótulo legível
// de quão recente foi o último acesso. Entrada vazia vira "Never";
// entrada não parseável vira "Unknown". Nunca retorna erro.
func RecencyLabel(timestamp string) string {
	return recencyLabelAt(timestamp, time.Now())
}

func recencyLabelAt(timestamp string, now time.Time) string {
	if strings.TrimSpace(timestamp) == "" {
		return labelNever
	}

	parsed, ok := parseFlexibleTime(timestamp)
	if !ok {
		return labelUnknown
	}

	days := int(now.Sub(parsed).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= recencyDaysMax:
		return fmt.Sprintf("%d days ago", days)
	case days <= recencyWeeksMax:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days <= recencyMonthMax:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}

// Formatos aceitos: ISO-8601 com Z ou offset (com ou sem fração de
// segundo), ISO-8601 sem zona, e data pura YYYY-MM-DD.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseFlexibleTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UsagePercent calcula a porcentagem de uso contra um limite,
// protegendo contra divisão por zero e estourando em 100.
func UsagePercent(used, limit int64) float64 {
	if limit == 0 {
		return 0
	}
	pct := float64(used) / float64(limit) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
