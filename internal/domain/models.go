package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodSingle      PaymentMethod = "single"
	PaymentMethodInstallment PaymentMethod = "installment"
)

// Order is a read-only input owned by the surrounding system.
type Order struct {
	ID            string          `db:"id"`
	ResellerID    string          `db:"reseller_id"`
	UnitID        *string         `db:"unit_id"`
	ClientID      string          `db:"client_id"`
	GrossAmount   decimal.Decimal `db:"gross_amount_cents"`
	PaymentMethod PaymentMethod   `db:"payment_method"`
	PaidAt        *time.Time      `db:"paid_at"`
	CreatedAt     time.Time       `db:"created_at"`
}

type Modality string

const (
	ModalityD1  Modality = "D+1"
	ModalityD15 Modality = "D+15"
	ModalityD30 Modality = "D+30"
)

func (m Modality) Valid() bool {
	switch m {
	case ModalityD1, ModalityD15, ModalityD30:
		return true
	}
	return false
}

type TransactionStatus string

const (
	// TransactionPendente funds collected, waiting for the modality delay.
	TransactionPendente TransactionStatus = "pendente"
	// TransactionLiberado funds released and ready to be paid out.
	TransactionLiberado TransactionStatus = "liberado"
	// TransactionRepassado net amount transferred to the merchant.
	TransactionRepassado TransactionStatus = "repassado"
	// TransactionCancelado cancelled before payout.
	TransactionCancelado TransactionStatus = "cancelado"
)

func (s TransactionStatus) Terminal() bool {
	return s == TransactionRepassado || s == TransactionCancelado
}

type FinancialTransaction struct {
	ID                   string            `db:"id"`
	OrderID              string            `db:"order_id"`
	ResellerID           string            `db:"reseller_id"`
	UnitID               *string           `db:"unit_id"`
	GrossAmount          decimal.Decimal   `db:"gross_amount_cents"`
	PercentageFee        decimal.Decimal   `db:"percentage_fee_hundredths"`
	FixedFee             decimal.Decimal   `db:"fixed_fee_cents"`
	NetAmount            decimal.Decimal   `db:"net_amount_cents"`
	Modality             Modality          `db:"modality"`
	Status               TransactionStatus `db:"status"`
	PaymentDate          time.Time         `db:"payment_date"`
	ScheduledReleaseDate time.Time         `db:"scheduled_release_date"`
	ReleasedAt           *time.Time        `db:"released_at"`
	TransferredAt        *time.Time        `db:"transferred_at"`
	CancelledAt          *time.Time        `db:"cancelled_at"`
	Version              int64             `db:"version"`
	CreatedAt            time.Time         `db:"created_at"`
}

type ConfigScope string

const (
	ScopePlatform ConfigScope = "platform"
	ScopeReseller ConfigScope = "reseller"
	ScopeUnit     ConfigScope = "unit"
)

// PayoutModalityConfig is a persisted reseller or unit choice. Nil fees inherit
// the platform default for the modality.
type PayoutModalityConfig struct {
	ID            string           `db:"id"`
	Scope         ConfigScope      `db:"scope"`
	ResellerID    string           `db:"reseller_id"`
	UnitID        *string          `db:"unit_id"`
	Modality      Modality         `db:"modality"`
	PercentageFee *decimal.Decimal `db:"percentage_fee_hundredths"`
	FixedFee      *decimal.Decimal `db:"fixed_fee_cents"`
	Active        bool             `db:"active"`
	CreatedAt     time.Time        `db:"created_at"`
}

// HasFees reports whether the row carries its own fee fields.
func (c PayoutModalityConfig) HasFees() bool {
	return c.PercentageFee != nil && c.FixedFee != nil
}

// ModalityConfig is the effective modality and fees for an order.
type ModalityConfig struct {
	Scope         ConfigScope     `json:"scope"`
	Modality      Modality        `json:"modality"`
	PercentageFee decimal.Decimal `json:"percentage_fee"`
	FixedFee      decimal.Decimal `json:"fixed_fee"`
}

type PlanStatus string

const (
	PlanAtivo     PlanStatus = "ativo"
	PlanQuitado   PlanStatus = "quitado"
	PlanCancelado PlanStatus = "cancelado"
)

type InstallmentPlan struct {
	ID               string          `db:"id"`
	OrderID          string          `db:"order_id"`
	ClientID         string          `db:"client_id"`
	TotalAmount      decimal.Decimal `db:"total_amount_cents"`
	InstallmentCount int             `db:"installment_count"`
	Status           PlanStatus      `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
	Installments     []Installment   `db:"-"`
}

type InstallmentStatus string

const (
	InstallmentPendente InstallmentStatus = "pendente"
	InstallmentPaga     InstallmentStatus = "paga"
	InstallmentAtrasada InstallmentStatus = "atrasada"
)

type Installment struct {
	ID      string            `db:"id"`
	PlanID  string            `db:"plan_id"`
	Number  int               `db:"number"`
	DueDate time.Time         `db:"due_date"`
	Amount  decimal.Decimal   `db:"amount_cents"`
	Status  InstallmentStatus `db:"status"`
	PaidAt  *time.Time        `db:"paid_at"`
	Version int64             `db:"version"`
}

// EffectiveStatus computes overdue at read time so callers never see a stale
// pendente between the due date passing and the next sweep.
func (i Installment) EffectiveStatus(now time.Time) InstallmentStatus {
	if i.Status == InstallmentPaga {
		return InstallmentPaga
	}
	if IsPastDue(i.DueDate, now) {
		return InstallmentAtrasada
	}
	return i.Status
}

// IsPastDue reports whether dueDate is a calendar day strictly before now's
// local day. Due dates are plain dates, so their location is ignored.
func IsPastDue(dueDate, now time.Time) bool {
	return CalendarDay(dueDate) < CalendarDay(now)
}

// CalendarDay is t's date in its own location, as YYYY-MM-DD.
func CalendarDay(t time.Time) string {
	return t.Format(time.DateOnly)
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// TransactionFilter narrows list and aggregate reads. Zero values mean "any".
type TransactionFilter struct {
	ResellerID string
	UnitID     string
	From       *time.Time
	To         *time.Time
}

type SettlementMetrics struct {
	ReceivedToday       decimal.Decimal `json:"received_today"`
	Released            decimal.Decimal `json:"released"`
	Pending             decimal.Decimal `json:"pending"`
	Blocked             decimal.Decimal `json:"blocked"`
	InstallmentsPaid    decimal.Decimal `json:"installments_paid"`
	InstallmentsPending decimal.Decimal `json:"installments_pending"`
	InstallmentsOverdue decimal.Decimal `json:"installments_overdue"`
	TransactionCount    int             `json:"transaction_count"`
}

type Delinquency struct {
	ClientID      string          `json:"client_id"`
	OverdueCount  int             `json:"overdue_count"`
	OverdueAmount decimal.Decimal `json:"overdue_amount"`
	IsDelinquent  bool            `json:"is_delinquent"`
}

type DeletionReason string

const (
	ReasonOverdueInstallments DeletionReason = "overdue_installments"
	ReasonOpenInstallmentPlan DeletionReason = "open_installment_plan"
)
