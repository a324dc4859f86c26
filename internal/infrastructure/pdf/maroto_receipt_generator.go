// Package pdf renderiza o recibo do pedido em PDF (A4).
//
// Layout da página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Fornecedor + CNPJ   │  N° do pedido + Data          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COMPRADOR: Loja + CNPJ                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Produto | Preço Unit. | Subtotal              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + forma de pagamento + prazo de entrega               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
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

	apporder "github.com/abastece/abastece-api/internal/application/order"
	"github.com/abastece/abastece-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 57}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ apporder.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa order.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator constrói o gerador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateOrderReceipt gera o PDF do recibo e devolve seus bytes.
func (g *MarotoReceiptGenerator) GenerateOrderReceipt(
	_ context.Context,
	o *entity.Order,
	store *entity.Store,
	supplier *entity.Supplier,
	lines []apporder.ReceiptLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(o, supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(buyerRow(store))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(o))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: fornecedor (esq) e número/data do pedido (dir).
func headerRow(o *entity.Order, supplier *entity.Supplier) core.Row {
	supplierName := "—"
	supplierCNPJ := "—"
	if supplier != nil {
		supplierName = supplier.LegalName
		if supplier.TradeName != "" {
			supplierName = supplier.TradeName
		}
		supplierCNPJ = supplier.CNPJ
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(supplierName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+supplierCNPJ, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(o.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+o.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// buyerRow: dados da loja compradora.
func buyerRow(store *entity.Store) core.Row {
	name := "—"
	cnpj := "—"
	if store != nil {
		name = store.Name
		cnpj = store.CNPJ
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("COMPRADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("CNPJ: "+cnpj, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Produto", 6, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func tableLineRows(lines []apporder.ReceiptLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+l.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: total do pedido (já com desconto de campanha), pagamento e prazo.
func totalsRow(o *entity.Order) core.Row {
	return row.New(22).Add(
		col.New(6).Add(
			text.New("Pagamento: "+paymentLabel(o.PaymentMethod), props.Text{
				Size: 9, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Prazo de entrega: %d dias", o.DeliveryTermDays), props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("TOTAL DO PEDIDO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 2,
			}),
			text.New("R$ "+o.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right,
				Color: colorPrimary, Top: 9, Right: 2,
			}),
		),
	)
}

func paymentLabel(method string) string {
	switch method {
	case entity.PaymentPix:
		return "Pix"
	case entity.PaymentBoleto:
		return "Boleto"
	case entity.PaymentCreditCard:
		return "Cartão de crédito"
	case entity.PaymentBankTransfer:
		return "Transferência bancária"
	}
	return method
}
