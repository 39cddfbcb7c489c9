// Package pdf implementa la generación de la hoja de pedido a proveedor
// (PDF imprimible de la sección ordering).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio  │  "Hoja de pedido" + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre + contacto + días de entrega             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Presentación | Precio | P.Unit | Stock   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: columna "Pedido" en blanco para llenar a mano      │
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

	"github.com/skyllex94/orderexpress-api/internal/application/ports"
	"github.com/skyllex94/orderexpress-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Verificar en tiempo de compilación que implementa el puerto.
var _ ports.OrderSheetGenerator = (*MarotoOrderSheetGenerator)(nil)

// MarotoOrderSheetGenerator implementa ports.OrderSheetGenerator usando Maroto v2.
type MarotoOrderSheetGenerator struct{}

// NewMarotoOrderSheetGenerator construye el generador.
func NewMarotoOrderSheetGenerator() *MarotoOrderSheetGenerator { return &MarotoOrderSheetGenerator{} }

// GenerateOrderSheet genera el PDF de la hoja de pedido y devuelve sus bytes.
func (g *MarotoOrderSheetGenerator) GenerateOrderSheet(
	_ context.Context,
	business *entity.Business,
	vendor *entity.Vendor,
	lines []ports.OrderSheetLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de pedido", true).
		WithAuthor(business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(business, vendor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(vendorRow(vendor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(lines)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y título + fecha (der).
func headerRow(business *entity.Business, vendor *entity.Vendor) core.Row {
	fecha := time.Now().Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(business.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(business.Address, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("HOJA DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Proveedor: "+vendor.Name, props.Text{
				Size: 9, Align: align.Right, Top: 9,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// vendorRow: datos de contacto y calendario de entregas del proveedor.
func vendorRow(vendor *entity.Vendor) core.Row {
	contacto := vendor.ContactName
	if vendor.Phone != "" {
		contacto += " · " + vendor.Phone
	}
	if vendor.Email != "" {
		contacto += " · " + vendor.Email
	}
	entregas := vendor.DeliveryDays
	if entregas == "" {
		entregas = "sin calendario"
	}

	return row.New(12).Add(
		col.New(8).Add(
			text.New("Contacto: "+contacto, props.Text{Size: 9, Top: 1}),
		),
		col.New(4).Add(
			text.New("Entregas: "+entregas, props.Text{Size: 9, Align: align.Right, Top: 1, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, a align.Type) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary}),
		)
	}
	return row.New(7).Add(
		header(3, "Producto", align.Left),
		header(3, "Presentación", align.Left),
		header(2, "Precio", align.Right),
		header(1, "P.Unit", align.Right),
		header(1, "Stock", align.Right),
		header(2, "Pedido", align.Center),
	)
}

func tableLineRows(lines []ports.OrderSheetLine) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		presentacion := l.PackagingName
		if l.UnitsPerPack > 0 {
			presentacion = fmt.Sprintf("%s (x%d)", l.PackagingName, l.UnitsPerPack)
		}
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(l.ProductName, props.Text{Size: 8})),
			col.New(3).Add(text.New(presentacion, props.Text{Size: 8, Color: colorGray})),
			col.New(2).Add(text.New("$"+l.PackPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
			col.New(1).Add(text.New("$"+l.UnitPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Color: colorGray})),
			col.New(1).Add(text.New(l.CurrentStock.String(), props.Text{Size: 8, Align: align.Right})),
			// Columna "Pedido" en blanco: se llena a mano o por teléfono.
			col.New(2).Add(text.New("______", props.Text{Size: 8, Align: align.Center, Color: colorGray})),
		))
	}
	return rows
}

func footerRow(lineCount int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d productos · precios según última presentación registrada", lineCount),
				props.Text{Size: 8, Color: colorGray, Top: 2}),
		),
	)
}
