package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

type pdfExporter struct {
	opts Options
}

func (e *pdfExporter) Extension() string { return "pdf" }

// pageBottom is the lowest baseline for body text; the footer sits below it.
const pageBottom = 270.0

// Export lays the report out on A4 pages. Coordinates are millimetres from
// the top-left corner and font sizes are points. Long day lists continue on a
// new page.
func (e *pdfExporter) Export(w io.Writer, r *Report) error {
	cur := e.opts.currency()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetCreationDate(r.GeneratedAt)
	pdf.SetTitle(Title, true)
	pdf.SetSubject(r.ID.String(), false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", 12)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()

	text := func(size, x, y float64, s string) {
		pdf.SetFontSize(size)
		pdf.Text(x, y, tr(s))
	}
	centered := func(size, y float64, s string) {
		pdf.SetFontSize(size)
		s = tr(s)
		pdf.Text(pageWidth/2-pdf.GetStringWidth(s)/2, y, s)
	}
	pdf.SetFooterFunc(func() {
		centered(10, 280, Footer)
	})
	pdf.AddPage()

	y := 0.0
	next := func(dy float64) {
		y += dy
		if y > pageBottom {
			pdf.AddPage()
			y = 20
		}
	}

	centered(20, 20, Title)
	text(12, 20, 30, "Data: "+e.opts.localDate(r.GeneratedAt))

	text(14, 20, 45, "Informações Básicas")
	text(12, 20, 55, fmt.Sprintf("Valor da Hora/Aula: %s %s", cur, Money(r.Input.HourlyRate)))

	y = 70
	text(12, 20, y, "Horas por Dia:")
	for _, day := range r.Input.WorkDays {
		next(10)
		text(12, 30, y, fmt.Sprintf("%s: %s horas", day.Label, Number(day.Hours)))
	}

	next(20)
	text(14, 20, y, "Resumo dos Cálculos")
	next(10)
	text(12, 20, y, fmt.Sprintf("Total de Horas Semanais: %s horas", Number(r.Result.TotalWeeklyHours)))
	next(10)
	text(12, 20, y, fmt.Sprintf("Salário Semanal: %s %s", cur, Money(r.Result.WeeklyGross)))
	if cal := r.Result.Calendar; cal != nil {
		next(10)
		text(12, 20, y, fmt.Sprintf("Mês de Referência: %s (%d dias, %d dias úteis, %s)",
			cal.Month, cal.DaysInMonth, cal.BusinessDays, cal.WeeksLabel()))
	}
	next(10)
	text(12, 20, y, fmt.Sprintf("Salário Mensal Bruto: %s %s", cur, Money(r.Result.MonthlyGross)))
	if showOvertime(r) {
		next(10)
		text(12, 20, y, fmt.Sprintf("Horas Extras: %s horas (%s %s)",
			Number(r.Input.OvertimeHours), cur, Money(r.Result.OvertimeAmount)))
	}

	next(15)
	text(12, 20, y, "Ajustes:")
	next(10)
	text(12, 30, y, "Descontos: "+discountLabel(r, cur))
	next(10)
	text(12, 30, y, fmt.Sprintf("Benefícios: %s %s", cur, Money(r.Input.Benefits)))

	next(15)
	text(16, 20, y, fmt.Sprintf("Salário Mensal Final: %s %s", cur, Money(r.Result.FinalMonthly)))

	return pdf.Output(w)
}
