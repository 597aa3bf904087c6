package settlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/repasse/internal/domain"
)

func newTx(status domain.TransactionStatus) *domain.FinancialTransaction {
	return &domain.FinancialTransaction{
		ID:                   "tx-1",
		Status:               status,
		PaymentDate:          date(2024, 1, 20),
		ScheduledReleaseDate: date(2024, 2, 19),
	}
}

func TestAdvanceToLiberado(t *testing.T) {
	tests := []struct {
		name        string
		status      domain.TransactionStatus
		now         time.Time
		wantChanged bool
		wantStatus  domain.TransactionStatus
		expectErr   error
	}{
		{name: "due pendente is released", status: domain.TransactionPendente, now: date(2024, 2, 19), wantChanged: true, wantStatus: domain.TransactionLiberado},
		{name: "early pendente stays", status: domain.TransactionPendente, now: date(2024, 2, 18), wantStatus: domain.TransactionPendente, expectErr: ErrNotDue},
		{name: "already liberado is a no-op", status: domain.TransactionLiberado, now: date(2024, 3, 1), wantStatus: domain.TransactionLiberado},
		{name: "repassado rejected", status: domain.TransactionRepassado, now: date(2024, 3, 1), wantStatus: domain.TransactionRepassado, expectErr: domain.ErrInvalidTransition},
		{name: "cancelado rejected", status: domain.TransactionCancelado, now: date(2024, 3, 1), wantStatus: domain.TransactionCancelado, expectErr: domain.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := newTx(tt.status)
			changed, err := AdvanceToLiberado(tx, tt.now)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantStatus, tx.Status)
			if tt.wantChanged {
				require.NotNil(t, tx.ReleasedAt)
				assert.True(t, tt.now.Equal(*tx.ReleasedAt))
			}
		})
	}
}

func TestErrNotDueIsInvalidTransition(t *testing.T) {
	assert.ErrorIs(t, ErrNotDue, domain.ErrInvalidTransition)
}

func TestConfirmPayout(t *testing.T) {
	transferredAt := date(2024, 2, 20)

	t.Run("liberado becomes repassado", func(t *testing.T) {
		tx := newTx(domain.TransactionLiberado)
		require.NoError(t, ConfirmPayout(tx, transferredAt))
		assert.Equal(t, domain.TransactionRepassado, tx.Status)
		require.NotNil(t, tx.TransferredAt)
		assert.True(t, transferredAt.Equal(*tx.TransferredAt))
	})

	t.Run("transfer on release time is accepted", func(t *testing.T) {
		tx := newTx(domain.TransactionLiberado)
		releasedAt := transferredAt
		tx.ReleasedAt = &releasedAt
		require.NoError(t, ConfirmPayout(tx, transferredAt))
		assert.Equal(t, domain.TransactionRepassado, tx.Status)
	})

	t.Run("transfer before release rejected", func(t *testing.T) {
		tx := newTx(domain.TransactionLiberado)
		releasedAt := transferredAt.Add(time.Hour)
		tx.ReleasedAt = &releasedAt
		err := ConfirmPayout(tx, transferredAt)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, domain.TransactionLiberado, tx.Status)
		assert.Nil(t, tx.TransferredAt)
	})

	for _, status := range []domain.TransactionStatus{domain.TransactionPendente, domain.TransactionRepassado, domain.TransactionCancelado} {
		t.Run(string(status)+" rejected", func(t *testing.T) {
			tx := newTx(status)
			err := ConfirmPayout(tx, transferredAt)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			assert.Equal(t, status, tx.Status)
			assert.Nil(t, tx.TransferredAt)
		})
	}
}

func TestCancel(t *testing.T) {
	now := date(2024, 2, 1)
	tests := []struct {
		status    domain.TransactionStatus
		expectErr bool
	}{
		{status: domain.TransactionPendente},
		{status: domain.TransactionLiberado},
		{status: domain.TransactionRepassado, expectErr: true},
		{status: domain.TransactionCancelado, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			tx := newTx(tt.status)
			err := Cancel(tx, now)
			if tt.expectErr {
				var terr *domain.TransitionError
				require.ErrorAs(t, err, &terr)
				assert.Equal(t, string(tt.status), terr.From)
				assert.Equal(t, tt.status, tx.Status)
				assert.Nil(t, tx.CancelledAt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.TransactionCancelado, tx.Status)
			require.NotNil(t, tx.CancelledAt)
		})
	}
}

// Walks every sequence of operations up to length 4 and checks that repassado is
// only ever reached from liberado.
func TestLifecycle_RepassadoRequiresLiberado(t *testing.T) {
	type op func(tx *domain.FinancialTransaction) error
	ops := map[string]op{
		"advance-early": func(tx *domain.FinancialTransaction) error {
			_, err := AdvanceToLiberado(tx, date(2024, 1, 21))
			return err
		},
		"advance-due": func(tx *domain.FinancialTransaction) error {
			_, err := AdvanceToLiberado(tx, date(2024, 2, 19))
			return err
		},
		"payout": func(tx *domain.FinancialTransaction) error { return ConfirmPayout(tx, date(2024, 2, 20)) },
		"cancel": func(tx *domain.FinancialTransaction) error { return Cancel(tx, date(2024, 2, 20)) },
	}
	names := []string{"advance-early", "advance-due", "payout", "cancel"}

	var walk func(tx domain.FinancialTransaction, depth int)
	walk = func(tx domain.FinancialTransaction, depth int) {
		if depth == 0 {
			return
		}
		for _, name := range names {
			next := tx
			before := next.Status
			if err := ops[name](&next); err != nil {
				assert.Equal(t, before, next.Status, "failed %s must not change state", name)
			}
			if next.Status == domain.TransactionRepassado && before != domain.TransactionRepassado {
				assert.Equal(t, domain.TransactionLiberado, before)
			}
			walk(next, depth-1)
		}
	}
	walk(*newTx(domain.TransactionPendente), 4)
}
