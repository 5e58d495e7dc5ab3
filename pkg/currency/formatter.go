package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/vfg2006/painel-faturamento-api/pkg/log"
)

// Formatter formata valores monetários para exibição no painel. A tag de
// localidade vem da configuração; quando ela não resolve, o formatador
// degrada para o formato manual SYMBOL #,###.## sem interromper o serviço.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter monta o formatador para a localidade configurada.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		log.L.Warnf("currency: localidade %q não reconhecida, usando formato padrão: %v", locale, err)
		return NewFallbackFormatter(symbol)
	}

	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// NewFallbackFormatter monta o formatador manual, independente de
// localidade. Útil em testes e como degradação do NewFormatter.
func NewFallbackFormatter(symbol string) *Formatter {
	return &Formatter{symbol: symbol}
}

// Format devolve o valor com símbolo e exatamente duas casas decimais.
// Negativos saem com o sinal depois do símbolo.
func (f *Formatter) Format(value decimal.Decimal) string {
	if f.printer != nil {
		v, _ := value.Float64()

		return f.printer.Sprintf("%s %v", f.symbol,
			number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}

	return f.symbol + " " + groupedFixed(value)
}

// groupedFixed monta #,###.## com vírgula de milhar e ponto decimal,
// sem depender de dados de localidade.
func groupedFixed(value decimal.Decimal) string {
	text := value.StringFixed(2)

	negative := strings.HasPrefix(text, "-")
	if negative {
		text = text[1:]
	}

	intPart, fracPart, _ := strings.Cut(text, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	formatted := strings.Join(groups, ",") + "." + fracPart
	if negative {
		formatted = "-" + formatted
	}

	return formatted
}
