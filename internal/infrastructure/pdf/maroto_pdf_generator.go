// Package pdf implementa los documentos imprimibles del sistema: la hoja de
// pedido que se entrega al cliente y el reporte de ventas de un período.
//
// Layout de la hoja de pedido (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + N° registro  │  N° Pedido + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Tel + Dirección de entrega               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Subtotal              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / TOTAL                       │
//	│  FOOTER: notas + datos de contacto de la empresa            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/Pedidos-api/internal/application/reports"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var (
	_ reports.OrderPDFGenerator    = (*MarotoPDFGenerator)(nil)
	_ reports.SalesReportGenerator = (*MarotoPDFGenerator)(nil)
)

// MarotoPDFGenerator implementa los generadores de PDF usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOrderPDF genera la hoja de pedido y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.Order,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Pedido "+order.Number, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)
	lang := company.DefaultLanguage
	cur := company.DefaultCurrency

	m.AddRows(orderHeaderRow(order, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(order.Items, cur, lang) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(orderTotalsRow(order, cur, lang))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range orderFooterRows(order, company) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateSalesReportPDF genera el reporte de ventas y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSalesReportPDF(
	_ context.Context,
	report *reports.SalesReport,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)
	lang := company.DefaultLanguage
	cur := company.DefaultCurrency

	m.AddRows(reportHeaderRow(report, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(reportSummaryRow(report, cur, lang))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(reportTableHeaderRow())
	for _, r := range reportRows(report.Rows, cur, lang) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones de la hoja de pedido ────────────────────────────────────────────

// orderHeaderRow: empresa (izq) y N° Pedido + Fecha (der).
func orderHeaderRow(order *entity.Order, company *entity.Company) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.LocalizedName(company.DefaultLanguage), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reg.: "+nonEmpty(company.RegistrationNumber, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente y la entrega.
func customerRow(order *entity.Order) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(order.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Entrega: %s",
				nonEmpty(order.CustomerPhone, "—"),
				nonEmpty(order.CustomerAddress, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// itemsHeaderRow: cabecera de la tabla de líneas.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// itemRows: una fila por línea del pedido.
func itemRows(items []*entity.OrderItem, cur, lang string) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.Name
		if it.IsCustom {
			name += " *"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				money.FormatNumber(it.Quantity, lang),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money.FormatCurrencyForLanguage(it.UnitPrice, cur, lang),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money.FormatCurrencyForLanguage(it.Subtotal, cur, lang),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// orderTotalsRow: bloque de totales alineado a la derecha.
func orderTotalsRow(order *entity.Order, cur, lang string) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3), // espacio izquierdo
		col.New(4).Add(
			label("Subtotal:"),
			label(fmt.Sprintf("Impuesto (%s%%):", money.FormatNumber(order.TaxRate, lang))),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(money.FormatCurrencyForLanguage(order.Subtotal, cur, lang)),
			value(money.FormatCurrencyForLanguage(order.TaxAmount, cur, lang)),
			grandValue(money.FormatCurrencyForLanguage(order.Total, cur, lang)),
		),
		col.New(1), // espacio derecho
	)
}

// orderFooterRows: notas del pedido + contacto de la empresa.
func orderFooterRows(order *entity.Order, company *entity.Company) []core.Row {
	rows := []core.Row{}
	if order.Notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Notas:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
			text.New(order.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%s   |   Tel: %s   |   Email: %s",
			nonEmpty(company.LocalizedAddress(company.DefaultLanguage), "—"),
			nonEmpty(company.Phone, "—"),
			nonEmpty(company.Email, "—"),
		), props.Text{Size: 7, Color: colorGray, Top: 2}),
	)))
	return rows
}

// ── Secciones del reporte de ventas ───────────────────────────────────────────

func reportHeaderRow(report *reports.SalesReport, company *entity.Company) core.Row {
	periodo := fmt.Sprintf("%s — %s",
		report.From.Format("02/01/2006"), report.To.Format("02/01/2006"))
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.LocalizedName(company.DefaultLanguage), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+periodo, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func reportSummaryRow(report *reports.SalesReport, cur, lang string) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell("Pedidos", fmt.Sprintf("%d", report.OrderCount)),
		cell("Cancelados", fmt.Sprintf("%d", report.CancelledCount)),
		cell("Ingresos", money.FormatCurrencyForLanguage(report.TotalRevenue, cur, lang)),
		cell("Promedio", money.FormatCurrencyForLanguage(report.AverageRevenue, cur, lang)),
	)
}

func reportTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N° Pedido", 2, align.Left),
		h("Cliente", 4, align.Left),
		h("Fecha", 2, align.Center),
		h("Estado", 2, align.Center),
		h("Total", 2, align.Right),
	)
}

func reportRows(rows []reports.SalesReportRow, cur, lang string) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(r.Number, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(r.CustomerName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(r.Status, props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(money.FormatCurrencyForLanguage(r.Total, cur, lang), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
