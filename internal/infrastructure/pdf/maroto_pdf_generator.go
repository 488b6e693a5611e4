// Package pdf materializa la lista de compras como documento A4.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: "Shopping List" + título de la receta + fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ☐ | Ingrediente | Faltante | Estado                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de líneas                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/hidaken991018/mini-hackathonv2-sub000/internal/application/shopping"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 120, Blue: 72}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarn    = &props.Color{Red: 200, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ shopping.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa shopping.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateShoppingList genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateShoppingList(
	_ context.Context,
	recipeTitle string,
	entries []shopping.ListEntry,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Shopping List", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(recipeTitle))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(entries) == 0 {
		m.AddRows(row.New(12).Add(
			col.New(12).Add(text.New("Nothing to buy — every ingredient is covered.", props.Text{
				Size: 10, Top: 3, Color: colorGray, Align: align.Center,
			})),
		))
	} else {
		m.AddRows(tableHeaderRow())
		for _, e := range entries {
			m.AddRows(entryRow(e))
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(footerRow(len(entries)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(recipeTitle string) core.Row {
	fecha := time.Now().Format("2006-01-02")
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Shopping List", props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
			}),
			text.New(recipeTitle, props.Text{Size: 10, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(fecha, props.Text{Size: 9, Top: 2, Color: colorGray, Align: align.Right}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary}
	return row.New(8).Add(
		col.New(1).Add(text.New("", header)),
		col.New(6).Add(text.New("Ingredient", header)),
		col.New(3).Add(text.New("To buy", header)),
		col.New(2).Add(text.New("Status", header)),
	)
}

func entryRow(e shopping.ListEntry) core.Row {
	shortage := "-"
	if e.Shortage != nil {
		shortage = formatAmount(*e.Shortage) + " " + e.ShortageUnit
	}
	statusColor := colorWarn
	if e.Status == "missing" {
		statusColor = colorPrimary
	}
	cell := props.Text{Size: 9, Top: 2}
	return row.New(8).Add(
		col.New(1).Add(text.New("[ ]", cell)),
		col.New(6).Add(text.New(e.Name, cell)),
		col.New(3).Add(text.New(shortage, cell)),
		col.New(2).Add(text.New(e.Status, props.Text{Size: 9, Top: 2, Color: statusColor})),
	)
}

func footerRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("%d item(s) to buy", count),
			props.Text{Size: 9, Top: 2, Color: colorGray, Align: align.Right},
		)),
	)
}

// formatAmount recorta decimales insignificantes (2 en vez de 2.00).
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
