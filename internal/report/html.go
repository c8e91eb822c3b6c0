package report

import (
	"fmt"
	"html"
	"html/template"
	"io"
	"math"
	"strings"
)

type htmlExporter struct {
	opts Options
}

func (e *htmlExporter) Extension() string { return "html" }

type htmlRow struct {
	Label string
	Value string
}

type htmlData struct {
	Title     string
	Footer    string
	Date      string
	ID        string
	Days      []htmlRow
	Summary   []htmlRow
	Discount  string
	Benefits  string
	Final     string
	Chart     template.HTML
	Generated string
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 40px; background: #f5f7fa; }
    .container { max-width: 800px; margin: 0 auto; }
    .card { background: white; border-radius: 10px; padding: 24px; margin-bottom: 20px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
    h1 { color: #2c3e50; margin-bottom: 8px; }
    h2 { color: #34495e; font-size: 18px; margin-bottom: 16px; }
    .subtitle { color: #7f8c8d; margin-bottom: 30px; }
    .final { font-size: 32px; font-weight: bold; color: #4F46E5; }
    table { width: 100%; border-collapse: collapse; margin-top: 16px; }
    th, td { padding: 12px; text-align: left; border-bottom: 1px solid #eee; }
    th { color: #7f8c8d; font-weight: 500; }
    footer { color: #7f8c8d; text-align: center; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <h1>{{.Title}}</h1>
    <p class="subtitle">Data: {{.Date}}</p>

    <div class="card">
      <h2>Horas por Dia</h2>
      {{.Chart}}
      <table>
        <tr><th>Dia</th><th>Horas</th></tr>
{{- range .Days}}
        <tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{- end}}
      </table>
    </div>

    <div class="card">
      <h2>Resumo dos Cálculos</h2>
      <table>
{{- range .Summary}}
        <tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{- end}}
      </table>
    </div>

    <div class="card">
      <h2>Ajustes</h2>
      <p>Descontos: {{.Discount}}</p>
      <p>Benefícios: {{.Benefits}}</p>
    </div>

    <div class="card">
      <h2>Salário Mensal Final</h2>
      <p class="final">{{.Final}}</p>
    </div>

    <footer>{{.Footer}} | {{.Generated}} | {{.ID}}</footer>
  </div>
</body>
</html>
`))

func (e *htmlExporter) Export(w io.Writer, r *Report) error {
	cur := e.opts.currency()
	money := func(v float64) string { return cur + " " + Money(v) }

	data := htmlData{
		Title:     Title,
		Footer:    Footer,
		Date:      e.opts.localDate(r.GeneratedAt),
		ID:        r.ID.String(),
		Discount:  discountLabel(r, cur),
		Benefits:  money(r.Input.Benefits),
		Final:     money(r.Result.FinalMonthly),
		Chart:     template.HTML(hoursChartSVG(r)),
		Generated: e.opts.localTimestamp(r.GeneratedAt),
	}

	for _, day := range r.Input.WorkDays {
		data.Days = append(data.Days, htmlRow{Label: day.Label, Value: Number(day.Hours) + " horas"})
	}

	data.Summary = []htmlRow{
		{"Valor da Hora/Aula", money(r.Input.HourlyRate)},
		{"Total de Horas Semanais", Number(r.Result.TotalWeeklyHours) + " horas"},
		{"Salário Semanal", money(r.Result.WeeklyGross)},
		{"Semanas no Mês", Number(r.Result.WeeksInMonth)},
	}
	if cal := r.Result.Calendar; cal != nil {
		data.Summary = append(data.Summary,
			htmlRow{"Mês de Referência", cal.Month.String()},
			htmlRow{"Dias no Mês", fmt.Sprintf("%d (%s)", cal.DaysInMonth, cal.WeeksLabel())},
			htmlRow{"Dias Úteis", fmt.Sprintf("%d", cal.BusinessDays)},
		)
	}
	data.Summary = append(data.Summary, htmlRow{"Salário Mensal Bruto", money(r.Result.MonthlyGross)})
	if showOvertime(r) {
		data.Summary = append(data.Summary, htmlRow{
			"Horas Extras",
			fmt.Sprintf("%s horas (%s)", Number(r.Input.OvertimeHours), money(r.Result.OvertimeAmount)),
		})
	}

	return htmlTemplate.Execute(w, data)
}

// hoursChartSVG draws one bar per work day. Bars are capped at maxHours.
func hoursChartSVG(r *Report) string {
	days := r.Input.WorkDays
	if len(days) == 0 {
		return ""
	}

	width := 600
	height := 240
	padding := 40
	maxHours := 12.0
	barWidth := float64(width-2*padding) / float64(len(days))
	plotHeight := float64(height - 2*padding)

	var bars strings.Builder
	for i, day := range days {
		h := day.Hours
		if h < 0 || math.IsNaN(h) {
			h = 0
		}
		barHeight := (h / maxHours) * plotHeight
		if barHeight > plotHeight {
			barHeight = plotHeight
		}

		x := float64(padding) + float64(i)*barWidth + 5
		y := float64(height-padding) - barHeight

		color := "#4CAF50"
		if h > 8 {
			color = "#FF9800"
		}
		if h > 10 {
			color = "#F44336"
		}

		bars.WriteString(fmt.Sprintf(`<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="%s" rx="4"/>
    <text x="%.0f" y="%d" text-anchor="middle" font-size="12" fill="#333">%sh</text>
    <text x="%.0f" y="%d" text-anchor="middle" font-size="12" fill="#7f8c8d">%s</text>
    `,
			x, y, barWidth-10, barHeight, color,
			x+barWidth/2-5, int(y)-5, Number(day.Hours),
			x+barWidth/2-5, height-padding+20, html.EscapeString(day.Label)))
	}

	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">
    <rect width="%d" height="%d" fill="#f8f9fa" rx="10"/>
    %s
  </svg>`,
		width, height, width, height,
		width, height,
		bars.String(),
	)
}
