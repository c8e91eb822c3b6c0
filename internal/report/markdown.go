package report

import (
	"fmt"
	"io"
	"strings"
)

type markdownExporter struct {
	opts Options
}

func (e *markdownExporter) Extension() string { return "md" }

func (e *markdownExporter) Export(w io.Writer, r *Report) error {
	_, err := io.WriteString(w, e.render(r))
	return err
}

func (e *markdownExporter) render(r *Report) string {
	cur := e.opts.currency()
	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("# %s\n\n", Title))
	sb.WriteString(fmt.Sprintf("Data: %s\n\n", e.opts.localDate(r.GeneratedAt)))

	sb.WriteString("## Informações Básicas\n\n")
	sb.WriteString(fmt.Sprintf("Valor da Hora/Aula: %s %s\n\n", cur, Money(r.Input.HourlyRate)))

	sb.WriteString("## Horas por Dia\n\n")
	sb.WriteString("| Dia | Horas |\n")
	sb.WriteString("|-----|-------|\n")
	for _, day := range r.Input.WorkDays {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", escapeCell(day.Label), Number(day.Hours)))
	}
	sb.WriteString("\n")

	sb.WriteString("## Resumo dos Cálculos\n\n")
	sb.WriteString("| Item | Valor |\n")
	sb.WriteString("|------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total de Horas Semanais | %s horas |\n", Number(r.Result.TotalWeeklyHours)))
	sb.WriteString(fmt.Sprintf("| Salário Semanal | %s %s |\n", cur, Money(r.Result.WeeklyGross)))
	sb.WriteString(fmt.Sprintf("| Semanas no Mês | %s |\n", Number(r.Result.WeeksInMonth)))
	if cal := r.Result.Calendar; cal != nil {
		sb.WriteString(fmt.Sprintf("| Mês de Referência | %s |\n", cal.Month))
		sb.WriteString(fmt.Sprintf("| Dias no Mês | %d (%s) |\n", cal.DaysInMonth, cal.WeeksLabel()))
		sb.WriteString(fmt.Sprintf("| Dias Úteis | %d |\n", cal.BusinessDays))
	}
	sb.WriteString(fmt.Sprintf("| Salário Mensal Bruto | %s %s |\n", cur, Money(r.Result.MonthlyGross)))
	if showOvertime(r) {
		sb.WriteString(fmt.Sprintf("| Horas Extras | %s horas (%s %s) |\n",
			Number(r.Input.OvertimeHours), cur, Money(r.Result.OvertimeAmount)))
	}
	sb.WriteString("\n")

	sb.WriteString("## Ajustes\n\n")
	sb.WriteString(fmt.Sprintf("- Descontos: %s\n", discountLabel(r, cur)))
	sb.WriteString(fmt.Sprintf("- Benefícios: %s %s\n\n", cur, Money(r.Input.Benefits)))

	sb.WriteString(fmt.Sprintf("**Salário Mensal Final: %s %s**\n\n", cur, Money(r.Result.FinalMonthly)))

	// Footer
	sb.WriteString(fmt.Sprintf("---\n*%s | %s | %s*\n", Footer, e.opts.localTimestamp(r.GeneratedAt), r.ID))

	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
