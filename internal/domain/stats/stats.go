// Package stats contém os cálculos derivados exibidos nas telas de
// estatísticas e histórico: participação na receita e faixa de recência.
package stats

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Item par rótulo/valor de entrada para o cálculo de participação.
type Item struct {
	Label string
	Value decimal.Decimal
}

// Share resultado com a participação percentual do item.
type Share struct {
	Label   string
	Value   decimal.Decimal
	Percent decimal.Decimal // 0–100, arredondado a uma casa decimal
}

// RevenueShare calcula a participação percentual de cada item no total.
// Total zero (lista vazia ou todos os valores zero) devolve 0% para todos,
// nunca divisão por zero.
func RevenueShare(items []Item) []Share {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Value)
	}

	out := make([]Share, 0, len(items))
	cem := decimal.NewFromInt(100)
	for _, it := range items {
		pct := decimal.Zero
		if total.GreaterThan(decimal.Zero) {
			pct = it.Value.Div(total).Mul(cem).Round(1)
		}
		out = append(out, Share{Label: it.Label, Value: it.Value, Percent: pct})
	}
	return out
}

// Faixas de recência de uma venda.
const (
	BucketHoje    = "hoje"
	BucketRecente = "recente"
	BucketAntiga  = "antiga"
)

// RecencyBucket classifica a venda pela idade em dias corridos, usando o
// teto da duração decorrida (não fronteiras de calendário): 1 dia -> hoje,
// até 7 -> recente, acima -> antiga. A regra é propositalmente ingênua em
// relação ao calendário; não "corrigir" para dias civis.
func RecencyBucket(saleTime, now time.Time) string {
	diff := now.Sub(saleTime)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))

	switch {
	case days == 1:
		return BucketHoje
	case days <= 7:
		return BucketRecente
	default:
		return BucketAntiga
	}
}
