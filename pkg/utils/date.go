package utils

import (
	"strings"
	"time"
)

// Formatos que as views legadas emitem no campo de data. A coluna é texto no
// banco, então cada linha pode chegar em um formato diferente.
var viewDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

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

// ParseViewDate tenta os formatos conhecidos das views e devolve nil quando
// nenhum casa. Linhas sem data legível são descartadas pelo filtro diário,
// nunca transformadas em erro.
func ParseViewDate(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	for _, layout := range viewDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}

	return nil
}

// SameDay compara apenas ano, mês e dia, ignorando o horário. As datas das
// views são hora de parede, então a comparação não converte fusos.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatDateBR formata a data no padrão brasileiro (dd/mm/aaaa).
func FormatDateBR(date time.Time) string {
	return date.Format("02/01/2006")
}

var weekdaysPTBR = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// WeekdayPTBR devolve o nome do dia da semana em português.
func WeekdayPTBR(date time.Time) string {
	return weekdaysPTBR[date.Weekday()]
}
