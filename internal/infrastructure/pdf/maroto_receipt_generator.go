// Package pdf renderiza o cupom não fiscal de uma venda finalizada.
//
// Layout da página A5:
//
//	┌──────────────────────────────────────┐
//	│  CABEÇALHO: nome da loja + cupom/data │
//	│  ──────────────────────────────────  │
//	│  CLIENTE + FORMA DE PAGAMENTO         │
//	│  ──────────────────────────────────  │
//	│  TABELA: Qtd | Produto | Unit | Subt  │
//	│  ──────────────────────────────────  │
//	│  TOTAL                                │
//	│  QR com a referência + rodapé         │
//	└──────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/pacoca/pacoca-pos/internal/application/checkout"
	"github.com/pacoca/pacoca-pos/internal/domain/cart"
	"github.com/pacoca/pacoca-pos/pkg/money"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 121, Green: 68, Blue: 21} // marrom paçoca
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa checkout.ReceiptPDFGenerator com Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator constrói o gerador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF gera o cupom e devolve seus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, r *checkout.Receipt) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cupom de venda", true).
		WithAuthor(r.StoreName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, lr := range tableLineRows(r.Lines) {
		m.AddRows(lr)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(r))

	m.AddRows(line.NewRow(2))
	m.AddRows(footerRows(r)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar cupom: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: nome da loja (esq) e referência + data (dir).
func headerRow(r *checkout.Receipt) core.Row {
	data := r.Date.Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(r.StoreName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cupom não fiscal", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CUPOM "+shortRef(r.Reference), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New(data, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// customerRow: cliente e forma de pagamento.
func customerRow(r *checkout.Receipt) core.Row {
	cliente := r.CustomerName
	if cliente == "" {
		cliente = "—"
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Cliente: "+cliente, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			}),
			text.New("Forma de pagamento: "+r.PaymentMethod, props.Text{
				Size: 8, Top: 6, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd", 1, align.Center),
		h("Produto", 6, align.Left),
		h("Unitário", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableLineRows: uma fila por linha do carrinho.
func tableLineRows(lines []cart.Line) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money.FormatBRL(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money.FormatBRL(l.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total geral à direita.
func totalRow(r *checkout.Receipt) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(money.FormatBRL(r.Total), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// footerRows: QR com a referência completa + mensagem do rodapé.
func footerRows(r *checkout.Receipt) []core.Row {
	rows := []core.Row{
		row.New(30).Add(
			col.New(4).Add(code.NewQr(r.Reference, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Referência: "+r.Reference, props.Text{
					Size: 7, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("Guarde este cupom para\nconsultas e trocas.", props.Text{
					Size: 8, Top: 12, Left: 3, Color: colorGray,
				}),
			),
		),
	}

	if r.Footer != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(r.Footer, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// shortRef abrevia o UUID da referência para o cabeçalho.
func shortRef(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}
