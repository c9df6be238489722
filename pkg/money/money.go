// Package money formata valores monetários em reais (pt-BR) para recibos e
// resumos: "R$ 1.234,56".
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL devolve o valor com prefixo R$, separador de milhar "." e
// decimal "," com duas casas, como a loja sempre exibiu.
func FormatBRL(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return printer.Sprintf("R$ %.2f", f)
}
