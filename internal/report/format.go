package report

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/profcalc/internal/salary"
)

// Money renders v with exactly two decimals, e.g. 9900 -> "9900.00".
func Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nonFinite(v)
	}
	return toFixed(v)
}

// toFixed rounds the exact binary value of v, so 1.005 (stored as
// 1.00499...) becomes "1.00".
func toFixed(v float64) string {
	return decimal.NewFromFloatWithExponent(v, -20).StringFixed(2)
}

// Number renders v in its shortest form, e.g. 8 -> "8", 7.5 -> "7.5".
func Number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nonFinite(v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BRL renders v with pt-BR grouping, e.g. 9900 -> "9.900,00". Values of
// any magnitude are grouped without an int64 conversion.
func BRL(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nonFinite(v)
	}
	s := toFixed(v)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return sign + s
	}
	return sign + strings.ReplaceAll(humanize.BigComma(n), ",", ".") + "," + frac
}

// NumberBR is Number with a decimal comma.
func NumberBR(v float64) string {
	return strings.Replace(Number(v), ".", ",", 1)
}

func nonFinite(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return "NaN"
}

// discountLabel shows a percentage discount with its computed amount.
func discountLabel(r *Report, currency string) string {
	if r.Input.DiscountType == salary.DiscountPercentage {
		return fmt.Sprintf("%s%% (%s %s)", Number(r.Input.DiscountValue), currency, Money(r.Result.DiscountAmount))
	}
	return fmt.Sprintf("%s %s", currency, Money(r.Input.DiscountValue))
}

// showOvertime is true when the overtime line carries information.
func showOvertime(r *Report) bool {
	return r.Input.OvertimeHours != 0 || r.Result.Calendar != nil
}
