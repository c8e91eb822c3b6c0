package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/profcalc/internal/salary"
)

// textExporter is the terminal summary: pt-BR number grouping, no layout.
type textExporter struct {
	opts Options
}

func (e *textExporter) Extension() string { return "txt" }

func (e *textExporter) Export(w io.Writer, r *Report) error {
	_, err := io.WriteString(w, e.render(r))
	return err
}

func (e *textExporter) render(r *Report) string {
	cur := e.opts.currency()
	money := func(v float64) string { return cur + " " + BRL(v) }

	var sb strings.Builder
	line := func(label, value string) {
		sb.WriteString(fmt.Sprintf("  %-26s %s\n", label+":", value))
	}

	sb.WriteString("Informações Básicas\n")
	line("Valor da Hora/Aula", money(r.Input.HourlyRate))
	for _, day := range r.Input.WorkDays {
		line(day.Label, NumberBR(day.Hours)+" horas")
	}

	if cal := r.Result.Calendar; cal != nil {
		sb.WriteString("\nCalendário\n")
		line("Mês de Referência", cal.Month.String())
		line("Dias no Mês", fmt.Sprintf("%d (%s)", cal.DaysInMonth, cal.WeeksLabel()))
		line("Dias Úteis", fmt.Sprint(cal.BusinessDays))
	}

	sb.WriteString("\nResumo dos Cálculos\n")
	line("Horas Semanais", NumberBR(r.Result.TotalWeeklyHours)+" horas")
	line("Salário Semanal", money(r.Result.WeeklyGross))
	line("Semanas no Mês", NumberBR(r.Result.WeeksInMonth))
	line("Salário Mensal", money(r.Result.MonthlyGross))
	if showOvertime(r) {
		line("Horas Extras", fmt.Sprintf("%s horas (%s)", NumberBR(r.Input.OvertimeHours), money(r.Result.OvertimeAmount)))
	}

	if r.Input.DiscountType == salary.DiscountPercentage {
		line("Descontos", NumberBR(r.Input.DiscountValue)+"%")
		if r.Input.DiscountValue > 0 {
			line("Valor calculado", money(r.Result.DiscountAmount))
		}
	} else {
		line("Descontos", money(r.Input.DiscountValue))
	}
	line("Benefícios", money(r.Input.Benefits))

	sb.WriteString("\n")
	line("Salário Final", money(r.Result.FinalMonthly))
	sb.WriteString("  (Incluindo descontos e benefícios)\n")

	return sb.String()
}
