package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/profcalc/internal/calendar"
	"github.com/profcalc/internal/salary"
)

// Form holds the live input of one session. Every setter replaces a field of
// the snapshot; Result always recomputes from the whole snapshot.
type Form struct {
	input  salary.Input
	logger *zap.Logger
}

func New(initial salary.Input, logger *zap.Logger) *Form {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(initial.WorkDays) == 0 {
		defaults := salary.DefaultInput(nil)
		initial.WorkDays = defaults.WorkDays
	}
	if initial.DiscountType == "" {
		initial.DiscountType = salary.DiscountFixed
	}
	return &Form{
		input:  initial.Clone(),
		logger: logger,
	}
}

func (f *Form) Input() salary.Input {
	return f.input.Clone()
}

func (f *Form) Result() salary.Result {
	return salary.Compute(f.input)
}

func (f *Form) SetHourlyRate(v float64) {
	f.input.HourlyRate = v
	f.changed("hourly_rate", v)
}

func (f *Form) SetHours(index int, v float64) error {
	if index < 0 || index >= len(f.input.WorkDays) {
		return fmt.Errorf("day %d out of range (1-%d)", index+1, len(f.input.WorkDays))
	}
	f.input.WorkDays[index].Hours = v
	f.changed(f.input.WorkDays[index].Label, v)
	return nil
}

func (f *Form) SetOvertime(v float64) {
	f.input.OvertimeHours = v
	f.changed("overtime_hours", v)
}

func (f *Form) SetDiscountType(t salary.DiscountType) {
	f.input.DiscountType = t
	f.logger.Debug("field updated", zap.String("field", "discount_type"), zap.String("value", string(t)))
}

func (f *Form) SetDiscount(v float64) {
	f.input.DiscountValue = v
	f.changed("discount_value", v)
}

func (f *Form) SetBenefits(v float64) {
	f.input.Benefits = v
	f.changed("benefits", v)
}

// SetMonth selects the reference month. The zero month switches back to the
// fixed weeks-per-month multiplier.
func (f *Form) SetMonth(m calendar.Month) {
	f.input.ReferenceMonth = m
	f.logger.Debug("field updated", zap.String("field", "reference_month"), zap.String("value", m.String()))
}

// Reset restores the default values without touching the reference month.
func (f *Form) Reset() {
	f.input = f.input.Reset()
	f.logger.Debug("form reset", zap.String("reference_month", f.input.ReferenceMonth.String()))
}

// SetField applies a "name=value" edit typed at the prompt. Day fields can be
// addressed by label (case-insensitive) or by 1-based position.
func (f *Form) SetField(name, raw string) error {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "rate", "valor", "hora":
		f.SetHourlyRate(ParseNumber(raw))
	case "overtime", "extras":
		f.SetOvertime(ParseNumber(raw))
	case "discount", "desconto", "descontos":
		f.SetDiscount(ParseNumber(raw))
	case "benefits", "beneficios", "benefícios":
		f.SetBenefits(ParseNumber(raw))
	case "type", "tipo":
		t, err := salary.ParseDiscountType(raw)
		if err != nil {
			return err
		}
		f.SetDiscountType(t)
	case "month", "mes", "mês":
		return f.setMonthText(raw)
	default:
		index, err := f.dayIndex(key)
		if err != nil {
			return err
		}
		return f.SetHours(index, ParseNumber(raw))
	}
	return nil
}

func (f *Form) setMonthText(raw string) error {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case "", "off", "none":
		f.SetMonth(calendar.Month{})
	case "next", "prev":
		current := f.input.ReferenceMonth
		if current.IsZero() {
			return fmt.Errorf("no month selected")
		}
		if v == "next" {
			f.SetMonth(current.Next())
		} else {
			f.SetMonth(current.Prev())
		}
	default:
		m, err := calendar.ParseMonth(v)
		if err != nil {
			return err
		}
		f.SetMonth(m)
	}
	return nil
}

func (f *Form) dayIndex(key string) (int, error) {
	if n, err := strconv.Atoi(key); err == nil {
		return n - 1, nil
	}
	for i, day := range f.input.WorkDays {
		if strings.EqualFold(day.Label, key) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown field: %s", key)
}

func (f *Form) changed(field string, v float64) {
	f.logger.Debug("field updated", zap.String("field", field), zap.Float64("value", v))
}

// ParseNumber coerces text the way a numeric form input does: blank is zero,
// anything unparsable is NaN. A decimal comma is accepted.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
