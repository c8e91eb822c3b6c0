// Package salary turns a teacher's weekly schedule into an estimated monthly
// salary. Everything here is a pure function of its Input.
package salary

import (
	"fmt"
	"math"
	"strings"

	"github.com/profcalc/internal/calendar"
)

const (
	// DefaultHourlyRate is the rate a fresh or reset form starts with.
	DefaultHourlyRate = 50.0

	// DefaultWeeksPerMonth is the multiplier used when no reference month is set.
	DefaultWeeksPerMonth = 4.5
)

// DefaultDayLabels are the working days of a school week, Monday to Saturday.
var DefaultDayLabels = []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

// ParseDiscountType accepts the English names plus the pt-BR labels.
func ParseDiscountType(s string) (DiscountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed", "fixo", "valor", "":
		return DiscountFixed, nil
	case "percentage", "percent", "porcentagem", "%":
		return DiscountPercentage, nil
	}
	return "", fmt.Errorf("unknown discount type: %s (use fixed or percentage)", s)
}

// WorkDay is the number of hours taught on one day of the week.
type WorkDay struct {
	Label string  `json:"day"`
	Hours float64 `json:"hours" validate:"finite,gte=0"`
}

// Input is a snapshot of every user-supplied value.
type Input struct {
	HourlyRate     float64        `json:"hourly_rate" validate:"finite,gte=0"`
	WorkDays       []WorkDay      `json:"work_days" validate:"dive"`
	OvertimeHours  float64        `json:"overtime_hours" validate:"finite,gte=0"`
	DiscountType   DiscountType   `json:"discount_type" validate:"oneof=fixed percentage"`
	DiscountValue  float64        `json:"discount_value" validate:"finite,gte=0"`
	Benefits       float64        `json:"benefits" validate:"finite,gte=0"`
	ReferenceMonth calendar.Month `json:"reference_month,omitempty"`

	// WeeksPerMonth applies only when ReferenceMonth is zero. Zero means 4.5.
	WeeksPerMonth float64 `json:"weeks_per_month,omitempty" validate:"finite,gte=0"`
}

// DefaultInput builds a fresh input with one zero-hour entry per label.
func DefaultInput(labels []string) Input {
	if len(labels) == 0 {
		labels = DefaultDayLabels
	}
	days := make([]WorkDay, len(labels))
	for i, label := range labels {
		days[i] = WorkDay{Label: label}
	}
	return Input{
		HourlyRate:   DefaultHourlyRate,
		WorkDays:     days,
		DiscountType: DiscountFixed,
	}
}

// Reset restores the default values. The reference month, the discount type,
// the day labels and the weeks multiplier are kept.
func (in Input) Reset() Input {
	out := in.Clone()
	out.HourlyRate = DefaultHourlyRate
	for i := range out.WorkDays {
		out.WorkDays[i].Hours = 0
	}
	out.OvertimeHours = 0
	out.DiscountValue = 0
	out.Benefits = 0
	return out
}

// Clone returns a copy that shares no memory with in.
func (in Input) Clone() Input {
	out := in
	out.WorkDays = append([]WorkDay(nil), in.WorkDays...)
	return out
}

func (in Input) weeksPerMonth() float64 {
	if in.WeeksPerMonth == 0 {
		return DefaultWeeksPerMonth
	}
	return in.WeeksPerMonth
}

// Result holds every derived value.
type Result struct {
	TotalWeeklyHours float64 `json:"total_weekly_hours"`
	WeeklyGross      float64 `json:"weekly_gross"`
	WeeksInMonth     float64 `json:"weeks_in_month"`
	MonthlyGross     float64 `json:"monthly_gross"`
	OvertimeAmount   float64 `json:"overtime_amount"`
	DiscountAmount   float64 `json:"discount_amount"`
	FinalMonthly     float64 `json:"final_monthly"`

	// Calendar is set only when the input has a reference month.
	Calendar *calendar.Summary `json:"calendar,omitempty"`
}

// PreDiscountTotal is the base a percentage discount is taken from.
func (r Result) PreDiscountTotal() float64 {
	return r.MonthlyGross + r.OvertimeAmount
}

// Compute derives the monthly figures. It never fails: out-of-range values such
// as negative hours or a percentage above 100 flow through the arithmetic, and
// the final value is not clamped.
func Compute(in Input) Result {
	var res Result
	for _, day := range in.WorkDays {
		res.TotalWeeklyHours += day.Hours
	}
	res.WeeklyGross = res.TotalWeeklyHours * in.HourlyRate

	if in.ReferenceMonth.IsZero() {
		res.WeeksInMonth = in.weeksPerMonth()
	} else {
		summary := calendar.Summarize(in.ReferenceMonth)
		res.Calendar = &summary
		res.WeeksInMonth = summary.Weeks
	}

	res.MonthlyGross = res.WeeklyGross * res.WeeksInMonth
	res.OvertimeAmount = in.OvertimeHours * in.HourlyRate
	res.DiscountAmount = discountAmount(in.DiscountType, in.DiscountValue, res.PreDiscountTotal())
	res.FinalMonthly = res.PreDiscountTotal() - res.DiscountAmount + in.Benefits
	return res
}

// Anything that is not a percentage is treated as a fixed amount.
func discountAmount(kind DiscountType, value, base float64) float64 {
	if kind != DiscountPercentage {
		return value
	}
	return (math.Max(base, 0) * value) / 100
}
