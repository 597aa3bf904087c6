package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/pkg/money"
)

// ComputeNet returns round2(max(0, gross - (gross*pct/100 + fixed))).
// Rounding happens once, on the final value.
func ComputeNet(gross, pctFee, fixedFee decimal.Decimal) (decimal.Decimal, error) {
	if err := validateFeeInput(gross, pctFee, fixedFee); err != nil {
		return decimal.Zero, err
	}
	net := gross.Sub(money.Percent(gross, pctFee).Add(fixedFee))
	if net.IsNegative() {
		net = decimal.Zero
	}
	return money.Round2(net), nil
}

// FeeTotal is the rounded fee charged on gross.
func FeeTotal(gross, pctFee, fixedFee decimal.Decimal) (decimal.Decimal, error) {
	if err := validateFeeInput(gross, pctFee, fixedFee); err != nil {
		return decimal.Zero, err
	}
	return money.Round2(money.Percent(gross, pctFee).Add(fixedFee)), nil
}

func validateFeeInput(gross, pctFee, fixedFee decimal.Decimal) error {
	if !gross.IsPositive() {
		return domain.Validationf("gross amount must be positive, got %s", gross)
	}
	if pctFee.IsNegative() || pctFee.GreaterThan(decimal.NewFromInt(100)) {
		return domain.Validationf("percentage fee must be within [0, 100], got %s", pctFee)
	}
	if fixedFee.IsNegative() {
		return domain.Validationf("fixed fee must not be negative, got %s", fixedFee)
	}
	return nil
}
