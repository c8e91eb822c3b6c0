package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

type csvExporter struct {
	opts Options
}

func (e *csvExporter) Extension() string { return "csv" }

// csvRow flattens a report into a single spreadsheet row.
type csvRow struct {
	ReportID         string `csv:"report_id"`
	Date             string `csv:"date"`
	Currency         string `csv:"currency"`
	HourlyRate       string `csv:"hourly_rate"`
	Hours            string `csv:"hours"`
	TotalWeeklyHours string `csv:"total_weekly_hours"`
	WeeklyGross      string `csv:"weekly_gross"`
	ReferenceMonth   string `csv:"reference_month"`
	DaysInMonth      string `csv:"days_in_month"`
	BusinessDays     string `csv:"business_days"`
	WeeksInMonth     string `csv:"weeks_in_month"`
	MonthlyGross     string `csv:"monthly_gross"`
	OvertimeHours    string `csv:"overtime_hours"`
	OvertimeAmount   string `csv:"overtime_amount"`
	DiscountType     string `csv:"discount_type"`
	DiscountValue    string `csv:"discount_value"`
	DiscountAmount   string `csv:"discount_amount"`
	Benefits         string `csv:"benefits"`
	FinalMonthly     string `csv:"final_monthly"`
}

func (e *csvExporter) Export(w io.Writer, r *Report) error {
	hours := make([]string, 0, len(r.Input.WorkDays))
	for _, day := range r.Input.WorkDays {
		hours = append(hours, day.Label+"="+Number(day.Hours))
	}

	row := csvRow{
		ReportID:         r.ID.String(),
		Date:             e.opts.localDate(r.GeneratedAt),
		Currency:         e.opts.currency(),
		HourlyRate:       Money(r.Input.HourlyRate),
		Hours:            strings.Join(hours, ";"),
		TotalWeeklyHours: Number(r.Result.TotalWeeklyHours),
		WeeklyGross:      Money(r.Result.WeeklyGross),
		WeeksInMonth:     Number(r.Result.WeeksInMonth),
		MonthlyGross:     Money(r.Result.MonthlyGross),
		OvertimeHours:    Number(r.Input.OvertimeHours),
		OvertimeAmount:   Money(r.Result.OvertimeAmount),
		DiscountType:     string(r.Input.DiscountType),
		DiscountValue:    Number(r.Input.DiscountValue),
		DiscountAmount:   Money(r.Result.DiscountAmount),
		Benefits:         Money(r.Input.Benefits),
		FinalMonthly:     Money(r.Result.FinalMonthly),
	}
	if cal := r.Result.Calendar; cal != nil {
		row.ReferenceMonth = cal.Month.String()
		row.DaysInMonth = fmt.Sprint(cal.DaysInMonth)
		row.BusinessDays = fmt.Sprint(cal.BusinessDays)
	}

	return gocsv.Marshal([]csvRow{row}, w)
}
