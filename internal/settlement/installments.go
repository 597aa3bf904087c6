package settlement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/pkg/money"
)

const planEntity = "installment_plan"

// SplitAmount divides total into count parts. Parts 1..count-1 get
// floor(total/count) to the cent and the last part absorbs the remainder, so the
// parts always sum to total exactly.
func SplitAmount(total decimal.Decimal, count int) ([]decimal.Decimal, error) {
	if count < 1 {
		return nil, domain.Validationf("installment count must be at least 1, got %d", count)
	}
	if !total.IsPositive() {
		return nil, domain.Validationf("plan total must be positive, got %s", total)
	}
	if !money.Round2(total).Equal(total) {
		return nil, domain.Validationf("plan total %s has sub-cent precision", total)
	}
	if money.ToCents(total) < int64(count) {
		return nil, domain.Validationf("plan total %s cannot cover %d installments", total, count)
	}

	base := money.FloorCents(total.Div(decimal.NewFromInt(int64(count))))
	parts := make([]decimal.Decimal, count)
	allocated := decimal.Zero
	for i := 0; i < count-1; i++ {
		parts[i] = base
		allocated = allocated.Add(base)
	}
	parts[count-1] = total.Sub(allocated)
	return parts, nil
}

// AddMonthsClamped advances t by months calendar months, clamping the day to
// the last day of the target month (Jan 31 + 1 -> Feb 28/29).
func AddMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	lastDay := time.Date(y, m+time.Month(months)+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if d > lastDay {
		d = lastDay
	}
	hh, mm, ss := t.Clock()
	return time.Date(y, m+time.Month(months), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

// DueDates always offsets from firstDue so a clamped month does not drag the
// following ones (Jan 31, Feb 29, Mar 31).
func DueDates(firstDue time.Time, count int) []time.Time {
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = AddMonthsClamped(firstDue, i)
	}
	return dates
}

// BuildPlan generates an ativo plan with its installment schedule.
func BuildPlan(order domain.Order, total decimal.Decimal, count int, firstDue time.Time, newID func() string) (*domain.InstallmentPlan, error) {
	if firstDue.IsZero() {
		return nil, domain.Validationf("first due date is required")
	}
	amounts, err := SplitAmount(total, count)
	if err != nil {
		return nil, err
	}

	plan := &domain.InstallmentPlan{
		ID:               newID(),
		OrderID:          order.ID,
		ClientID:         order.ClientID,
		TotalAmount:      total,
		InstallmentCount: count,
		Status:           domain.PlanAtivo,
		Installments:     make([]domain.Installment, count),
	}
	for i, due := range DueDates(firstDue, count) {
		plan.Installments[i] = domain.Installment{
			ID:      newID(),
			PlanID:  plan.ID,
			Number:  i + 1,
			DueDate: due,
			Amount:  amounts[i],
			Status:  domain.InstallmentPendente,
		}
	}
	return plan, nil
}

// MarkPaid settles one installment and reports whether the plan became quitado.
// Paying an already paid installment changes nothing.
func MarkPaid(plan *domain.InstallmentPlan, installmentID string, paidAt time.Time) (changed bool, settled bool, err error) {
	if plan.Status == domain.PlanCancelado {
		return false, false, domain.NewTransitionError(planEntity, plan.ID, plan.Status, domain.PlanQuitado)
	}

	idx := -1
	for i := range plan.Installments {
		if plan.Installments[i].ID == installmentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, false, domain.NotFoundf("installment %s in plan %s", installmentID, plan.ID)
	}

	inst := &plan.Installments[idx]
	if inst.Status == domain.InstallmentPaga {
		return false, false, nil
	}
	inst.Status = domain.InstallmentPaga
	at := paidAt
	inst.PaidAt = &at

	if plan.Status == domain.PlanAtivo && AllPaid(plan.Installments) {
		plan.Status = domain.PlanQuitado
		settled = true
	}
	return true, settled, nil
}

func AllPaid(installments []domain.Installment) bool {
	if len(installments) == 0 {
		return false
	}
	for _, inst := range installments {
		if inst.Status != domain.InstallmentPaga {
			return false
		}
	}
	return true
}

// CancelPlan is only possible while the plan is ativo.
func CancelPlan(plan *domain.InstallmentPlan) error {
	if plan.Status != domain.PlanAtivo {
		return domain.NewTransitionError(planEntity, plan.ID, plan.Status, domain.PlanCancelado)
	}
	plan.Status = domain.PlanCancelado
	return nil
}

// MarkOverdue flips pendente installments whose due day has passed to atrasada
// and returns their ids. Running it again with the same now returns nothing.
func MarkOverdue(installments []domain.Installment, now time.Time) []string {
	var ids []string
	for i := range installments {
		inst := &installments[i]
		if inst.Status == domain.InstallmentPendente && domain.IsPastDue(inst.DueDate, now) {
			inst.Status = domain.InstallmentAtrasada
			ids = append(ids, inst.ID)
		}
	}
	return ids
}
