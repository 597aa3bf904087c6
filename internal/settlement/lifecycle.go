package settlement

import (
	"fmt"
	"time"

	"github.com/GlebRadaev/repasse/internal/domain"
)

const transactionEntity = "transaction"

// ErrNotDue is returned when a pendente transaction is asked to release early.
var ErrNotDue = fmt.Errorf("%w: release date not reached", domain.ErrInvalidTransition)

// AdvanceToLiberado moves pendente -> liberado once now reaches the scheduled
// release date. A liberado transaction is left untouched and reports false.
func AdvanceToLiberado(tx *domain.FinancialTransaction, now time.Time) (bool, error) {
	switch tx.Status {
	case domain.TransactionLiberado:
		return false, nil
	case domain.TransactionPendente:
		if now.Before(tx.ScheduledReleaseDate) {
			return false, ErrNotDue
		}
		tx.Status = domain.TransactionLiberado
		releasedAt := now
		tx.ReleasedAt = &releasedAt
		return true, nil
	default:
		return false, domain.NewTransitionError(transactionEntity, tx.ID, tx.Status, domain.TransactionLiberado)
	}
}

// ConfirmPayout records the transfer. Only liberado transactions can be paid
// out, and not with a transfer time before their release.
func ConfirmPayout(tx *domain.FinancialTransaction, transferredAt time.Time) error {
	if tx.Status != domain.TransactionLiberado {
		return domain.NewTransitionError(transactionEntity, tx.ID, tx.Status, domain.TransactionRepassado)
	}
	if tx.ReleasedAt != nil && transferredAt.Before(*tx.ReleasedAt) {
		return domain.Validationf("transfer time %s is before release at %s",
			transferredAt.Format(time.RFC3339), tx.ReleasedAt.Format(time.RFC3339))
	}
	tx.Status = domain.TransactionRepassado
	tx.TransferredAt = &transferredAt
	return nil
}

// Cancel is allowed from pendente or liberado. repassado is irreversible.
func Cancel(tx *domain.FinancialTransaction, now time.Time) error {
	switch tx.Status {
	case domain.TransactionPendente, domain.TransactionLiberado:
		tx.Status = domain.TransactionCancelado
		cancelledAt := now
		tx.CancelledAt = &cancelledAt
		return nil
	default:
		return domain.NewTransitionError(transactionEntity, tx.ID, tx.Status, domain.TransactionCancelado)
	}
}
