// Package pdf implementa el reporte mensual de asistencia en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre + código de empleado  │  Mes del reporte    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: días presentes / días tarde / confianza media     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Entrada | Salida | Tarde | Confianza        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda + fecha de generación                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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

	appattendance "github.com/jhoicas/smarthr-api/internal/application/attendance"
	"github.com/jhoicas/smarthr-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLate    = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa attendance.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

var _ appattendance.ReportGenerator = (*MarotoReportGenerator)(nil)

// MonthlyReport genera el PDF del mes y devuelve sus bytes.
func (g *MarotoReportGenerator) MonthlyReport(data *appattendance.MonthlyReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Mensual de Asistencia", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(data.Records, data.Location) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data.Location))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + código (izq) y mes del reporte (der).
func headerRow(data *appattendance.MonthlyReportData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(data.FullName, data.EmployeeCode), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+data.EmployeeCode, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE MENSUAL DE ASISTENCIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(monthLabel(data.Month), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: totales del mes.
func summaryRow(data *appattendance.MonthlyReportData) core.Row {
	stat := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(18).Add(
		stat("DÍAS PRESENTES", fmt.Sprintf("%d", data.DaysPresent)),
		stat("DÍAS TARDE", fmt.Sprintf("%d", data.DaysLate)),
		stat("REGISTROS", fmt.Sprintf("%d", len(data.Records))),
	)
}

// tableHeaderRow: cabecera de la tabla de registros.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Entrada", 2, align.Center),
		h("Salida", 2, align.Center),
		h("Tarde", 2, align.Center),
		h("Confianza", 3, align.Right),
	)
}

// tableDetailRows: una fila por día registrado.
func tableDetailRows(records []*entity.AttendanceRecord, loc *time.Location) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, rec := range records {
		lateLabel := "No"
		lateColor := colorGray
		if rec.IsLate {
			lateLabel = "Sí"
			lateColor = colorLate
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				rec.Date,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				clockOrDash(rec.InTime, loc),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				clockOrDash(rec.OutTime, loc),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				lateLabel,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: lateColor},
			)),
			col.New(3).Add(text.New(
				fmt.Sprintf("%.2f", rec.LastConfidence),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(10).Add(col.New(12).Add(
			text.New("Sin registros de asistencia en el mes.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	return result
}

// footerRow: leyenda + fecha de generación.
func footerRow(loc *time.Location) core.Row {
	generated := time.Now().In(loc).Format("02/01/2006 15:04")
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Registros capturados por reconocimiento facial. "+
				"Generado el "+generated+".",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// clockOrDash formatea la hora local o un guión si no hay registro.
func clockOrDash(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "—"
	}
	return t.In(loc).Format("15:04:05")
}

// monthLabel convierte "2025-03" en "Marzo 2025".
func monthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	names := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", names[t.Month()-1], t.Year())
}
