package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/profcalc/internal/calendar"
	"github.com/profcalc/internal/salary"
)

func addInputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Float64P("rate", "r", salary.DefaultHourlyRate, "Hourly rate")
	flags.Float64Slice("hours", nil, "Hours per work day, in order (e.g. 8,8,8,8,8,4)")
	flags.Float64("overtime", 0, "Overtime hours in the month")
	flags.Float64P("discount", "d", 0, "Discount value (amount or percent)")
	flags.String("discount-type", string(salary.DiscountFixed), "Discount type: fixed or percentage")
	flags.Float64P("benefits", "b", 0, "Benefits added to the final salary")
	flags.StringP("month", "m", "", `Reference month (YYYY-MM or "now")`)
}

// inputFromFlags builds the calculator input. Suspicious values are logged
// and still computed.
func inputFromFlags(cmd *cobra.Command) (salary.Input, error) {
	flags := cmd.Flags()
	in := salary.DefaultInput(cfg.WorkDays)
	in.WeeksPerMonth = cfg.WeeksPerMonth

	in.HourlyRate, _ = flags.GetFloat64("rate")
	hours, _ := flags.GetFloat64Slice("hours")
	if len(hours) > len(in.WorkDays) {
		return in, fmt.Errorf("got %d hour values for %d work days", len(hours), len(in.WorkDays))
	}
	for i, h := range hours {
		in.WorkDays[i].Hours = h
	}
	in.OvertimeHours, _ = flags.GetFloat64("overtime")
	in.DiscountValue, _ = flags.GetFloat64("discount")
	in.Benefits, _ = flags.GetFloat64("benefits")

	typ, _ := flags.GetString("discount-type")
	kind, err := salary.ParseDiscountType(typ)
	if err != nil {
		return in, err
	}
	in.DiscountType = kind

	monthStr, _ := flags.GetString("month")
	in.ReferenceMonth, err = parseMonthArg(monthStr)
	if err != nil {
		return in, fmt.Errorf("invalid --month: %w", err)
	}

	if err := in.Validate(); err != nil {
		zap.L().Warn("suspicious input", zap.Error(err))
	}
	return in, nil
}

func parseMonthArg(s string) (calendar.Month, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return calendar.Month{}, nil
	case "now", "atual":
		return calendar.MonthOf(cfg.Now()), nil
	}
	return calendar.ParseMonth(strings.TrimSpace(s))
}
