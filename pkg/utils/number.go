package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoney converte o texto de valor vindo das views em decimal. O parse é
// estrito: conteúdo não numérico vira erro, nunca zero silencioso.
func ParseMoney(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}
