package form

import (
	"math"
	"testing"
	"time"

	"github.com/profcalc/internal/calendar"
	"github.com/profcalc/internal/salary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithDefaults(t *testing.T) {
	f := New(salary.Input{HourlyRate: 50}, nil)
	in := f.Input()
	assert.Len(t, in.WorkDays, len(salary.DefaultDayLabels))
	assert.Equal(t, salary.DiscountFixed, in.DiscountType)
}

func TestSettersRecompute(t *testing.T) {
	f := New(salary.DefaultInput(nil), nil)

	for i, h := range []float64{8, 8, 8, 8, 8, 4} {
		require.NoError(t, f.SetHours(i, h))
	}
	assert.Equal(t, 9900.0, f.Result().FinalMonthly)

	f.SetBenefits(100)
	assert.Equal(t, 10000.0, f.Result().FinalMonthly)

	f.SetDiscountType(salary.DiscountPercentage)
	f.SetDiscount(10)
	assert.Equal(t, 990.0, f.Result().DiscountAmount)
	assert.Equal(t, 9900.0-990.0+100.0, f.Result().FinalMonthly)

	// switching back does not leave anything behind
	f.SetDiscountType(salary.DiscountFixed)
	f.SetDiscount(0)
	f.SetBenefits(0)
	assert.Equal(t, 9900.0, f.Result().FinalMonthly)
}

func TestSetHoursOutOfRange(t *testing.T) {
	f := New(salary.DefaultInput(nil), nil)
	assert.Error(t, f.SetHours(6, 1))
	assert.Error(t, f.SetHours(-1, 1))
}

func TestInputIsACopy(t *testing.T) {
	f := New(salary.DefaultInput(nil), nil)
	in := f.Input()
	in.WorkDays[0].Hours = 40
	assert.Equal(t, 0.0, f.Result().TotalWeeklyHours)
}

func TestResetKeepsMonth(t *testing.T) {
	month := calendar.Month{Year: 2025, Month: time.September}
	f := New(salary.DefaultInput(nil), nil)
	f.SetMonth(month)
	f.SetHourlyRate(80)
	require.NoError(t, f.SetHours(0, 6))
	f.SetOvertime(4)
	f.SetDiscount(30)
	f.SetBenefits(200)

	f.Reset()

	in := f.Input()
	assert.Equal(t, salary.DefaultHourlyRate, in.HourlyRate)
	assert.Equal(t, 0.0, in.OvertimeHours)
	assert.Equal(t, 0.0, in.DiscountValue)
	assert.Equal(t, 0.0, in.Benefits)
	assert.Equal(t, month, in.ReferenceMonth)
	assert.Equal(t, 0.0, f.Result().FinalMonthly)
}

func TestSetField(t *testing.T) {
	f := New(salary.DefaultInput(nil), nil)

	require.NoError(t, f.SetField("segunda", "8"))
	require.NoError(t, f.SetField("TERÇA", "8,5"))
	require.NoError(t, f.SetField("3", "2"))
	require.NoError(t, f.SetField("rate", "60"))
	require.NoError(t, f.SetField("tipo", "porcentagem"))
	require.NoError(t, f.SetField("desconto", "10"))
	require.NoError(t, f.SetField("month", "2025-09"))

	in := f.Input()
	assert.Equal(t, 8.0, in.WorkDays[0].Hours)
	assert.Equal(t, 8.5, in.WorkDays[1].Hours)
	assert.Equal(t, 2.0, in.WorkDays[2].Hours)
	assert.Equal(t, 60.0, in.HourlyRate)
	assert.Equal(t, salary.DiscountPercentage, in.DiscountType)
	assert.Equal(t, 10.0, in.DiscountValue)
	assert.Equal(t, calendar.Month{Year: 2025, Month: time.September}, in.ReferenceMonth)

	assert.Error(t, f.SetField("domingo", "3"))
	assert.Error(t, f.SetField("tipo", "meio"))
	assert.Error(t, f.SetField("month", "setembro"))
}

func TestMonthNavigation(t *testing.T) {
	f := New(salary.DefaultInput(nil), nil)
	assert.Error(t, f.SetField("month", "next"))

	require.NoError(t, f.SetField("month", "2024-12"))
	require.NoError(t, f.SetField("month", "next"))
	assert.Equal(t, calendar.Month{Year: 2025, Month: time.January}, f.Input().ReferenceMonth)

	require.NoError(t, f.SetField("month", "prev"))
	require.NoError(t, f.SetField("month", "prev"))
	assert.Equal(t, calendar.Month{Year: 2024, Month: time.November}, f.Input().ReferenceMonth)

	require.NoError(t, f.SetField("month", "off"))
	assert.True(t, f.Input().ReferenceMonth.IsZero())
	assert.Nil(t, f.Result().Calendar)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		isNaN    bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"42", 42, false},
		{"7.25", 7.25, false},
		{"7,25", 7.25, false},
		{"-3", -3, false},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseNumber(tt.input)
			if tt.isNaN {
				assert.True(t, math.IsNaN(result))
				return
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}
