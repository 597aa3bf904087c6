package settlement

import (
	"time"

	"github.com/GlebRadaev/repasse/internal/domain"
)

// Aggregate folds one snapshot of transactions and installments into the
// dashboard totals. Each transaction lands in at most one bucket because the
// buckets are keyed on status.
func Aggregate(txs []domain.FinancialTransaction, installments []domain.Installment, now time.Time) domain.SettlementMetrics {
	var m domain.SettlementMetrics
	startOfToday := domain.StartOfDay(now)

	for _, tx := range txs {
		m.TransactionCount++
		switch tx.Status {
		case domain.TransactionRepassado:
			if tx.TransferredAt != nil && !tx.TransferredAt.Before(startOfToday) && tx.TransferredAt.Before(now) {
				m.ReceivedToday = m.ReceivedToday.Add(tx.NetAmount)
			}
		case domain.TransactionLiberado:
			m.Released = m.Released.Add(tx.NetAmount)
		case domain.TransactionPendente:
			m.Pending = m.Pending.Add(tx.NetAmount)
		case domain.TransactionCancelado:
			if FundsCollectedBeforeCancel(tx) {
				m.Blocked = m.Blocked.Add(tx.NetAmount)
			}
		}
	}

	for _, inst := range installments {
		switch inst.EffectiveStatus(now) {
		case domain.InstallmentPaga:
			m.InstallmentsPaid = m.InstallmentsPaid.Add(inst.Amount)
		case domain.InstallmentAtrasada:
			m.InstallmentsOverdue = m.InstallmentsOverdue.Add(inst.Amount)
		case domain.InstallmentPendente:
			m.InstallmentsPending = m.InstallmentsPending.Add(inst.Amount)
		}
	}
	return m
}

// FundsCollectedBeforeCancel: transactions are only created once the order is
// paid, so a cancelled one holds collected funds unless it was cancelled before
// its recorded payment date.
func FundsCollectedBeforeCancel(tx domain.FinancialTransaction) bool {
	if tx.Status != domain.TransactionCancelado || tx.CancelledAt == nil || tx.PaymentDate.IsZero() {
		return false
	}
	return !tx.PaymentDate.After(*tx.CancelledAt)
}

// ClientDelinquency counts the overdue installments of a client's active plans.
func ClientDelinquency(clientID string, plans []domain.InstallmentPlan, now time.Time) domain.Delinquency {
	d := domain.Delinquency{ClientID: clientID}
	for _, plan := range plans {
		if plan.Status != domain.PlanAtivo {
			continue
		}
		for _, inst := range plan.Installments {
			if inst.EffectiveStatus(now) == domain.InstallmentAtrasada {
				d.OverdueCount++
				d.OverdueAmount = d.OverdueAmount.Add(inst.Amount)
			}
		}
	}
	d.IsDelinquent = d.OverdueCount > 0
	return d
}

// DeletionEligibility blocks account deletion while an active plan has an
// overdue installment. With blockOnOpen set, a still-open active plan with
// future pendente installments blocks as well.
func DeletionEligibility(plans []domain.InstallmentPlan, now time.Time, blockOnOpen bool) (bool, domain.DeletionReason) {
	hasOpen := false
	for _, plan := range plans {
		if plan.Status != domain.PlanAtivo {
			continue
		}
		for _, inst := range plan.Installments {
			switch inst.EffectiveStatus(now) {
			case domain.InstallmentAtrasada:
				return false, domain.ReasonOverdueInstallments
			case domain.InstallmentPendente:
				hasOpen = true
			}
		}
	}
	if blockOnOpen && hasOpen {
		return false, domain.ReasonOpenInstallmentPlan
	}
	return true, ""
}
