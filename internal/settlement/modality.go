package settlement

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/pkg/money"
)

type Fees struct {
	Percentage decimal.Decimal
	Fixed      decimal.Decimal
}

// FeeTable is the platform default fee per modality.
type FeeTable map[domain.Modality]Fees

func DefaultFeeTable() FeeTable {
	return FeeTable{
		domain.ModalityD1:  {Percentage: money.MustParse("8.0"), Fixed: money.MustParse("0.50")},
		domain.ModalityD15: {Percentage: money.MustParse("6.5"), Fixed: money.MustParse("0.50")},
		domain.ModalityD30: {Percentage: money.MustParse("5.0"), Fixed: money.MustParse("0.50")},
	}
}

// ParseFeeTable reads "D+1=8.0+0.50;D+15=6.5+0.50". An empty string yields an
// empty table, which makes every resolution fail closed.
func ParseFeeTable(s string) (FeeTable, error) {
	table := FeeTable{}
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("fee table entry %q: missing '='", entry)
		}
		modality := domain.Modality(strings.TrimSpace(key))
		if !modality.Valid() {
			return nil, fmt.Errorf("fee table entry %q: unknown modality", entry)
		}
		pctRaw, fixedRaw, ok := strings.Cut(value, "+")
		if !ok {
			return nil, fmt.Errorf("fee table entry %q: expected <pct>+<fixed>", entry)
		}
		pct, err := money.Parse(strings.TrimSpace(pctRaw))
		if err != nil {
			return nil, fmt.Errorf("fee table entry %q: %w", entry, err)
		}
		fixed, err := money.Parse(strings.TrimSpace(fixedRaw))
		if err != nil {
			return nil, fmt.Errorf("fee table entry %q: %w", entry, err)
		}
		if pct.IsNegative() || fixed.IsNegative() {
			return nil, fmt.Errorf("fee table entry %q: negative fee", entry)
		}
		table[modality] = Fees{Percentage: pct, Fixed: fixed}
	}
	return table, nil
}

func (t FeeTable) String() string {
	keys := make([]string, 0, len(t))
	for m := range t {
		keys = append(keys, string(m))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		f := t[domain.Modality(k)]
		parts = append(parts, fmt.Sprintf("%s=%s+%s", k, f.Percentage.String(), f.Fixed.StringFixed(2)))
	}
	return strings.Join(parts, ";")
}

// ResolveModality picks the effective config: a complete unit override, then
// the reseller's active config, then the platform default for defaultModality.
func ResolveModality(unit, reseller *domain.PayoutModalityConfig, table FeeTable, defaultModality domain.Modality) (domain.ModalityConfig, error) {
	if len(table) == 0 {
		return domain.ModalityConfig{}, fmt.Errorf("%w: platform fee table is empty", domain.ErrConfigurationMissing)
	}

	if unit != nil && unit.Active && unit.Modality.Valid() && unit.HasFees() {
		return domain.ModalityConfig{
			Scope:         domain.ScopeUnit,
			Modality:      unit.Modality,
			PercentageFee: *unit.PercentageFee,
			FixedFee:      *unit.FixedFee,
		}, nil
	}

	if reseller != nil && reseller.Active && reseller.Modality.Valid() {
		if reseller.HasFees() {
			return domain.ModalityConfig{
				Scope:         domain.ScopeReseller,
				Modality:      reseller.Modality,
				PercentageFee: *reseller.PercentageFee,
				FixedFee:      *reseller.FixedFee,
			}, nil
		}
		fees, ok := table[reseller.Modality]
		if !ok {
			return domain.ModalityConfig{}, fmt.Errorf("%w: no platform fee for %s", domain.ErrConfigurationMissing, reseller.Modality)
		}
		return domain.ModalityConfig{
			Scope:         domain.ScopeReseller,
			Modality:      reseller.Modality,
			PercentageFee: fees.Percentage,
			FixedFee:      fees.Fixed,
		}, nil
	}

	fees, ok := table[defaultModality]
	if !ok {
		return domain.ModalityConfig{}, fmt.Errorf("%w: no platform fee for default modality %s", domain.ErrConfigurationMissing, defaultModality)
	}
	return domain.ModalityConfig{
		Scope:         domain.ScopePlatform,
		Modality:      defaultModality,
		PercentageFee: fees.Percentage,
		FixedFee:      fees.Fixed,
	}, nil
}
