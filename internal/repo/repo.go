package repo

import (
	"github.com/GlebRadaev/repasse/internal/pg"
	modalityrepo "github.com/GlebRadaev/repasse/internal/repo/modality-repo"
	orderrepo "github.com/GlebRadaev/repasse/internal/repo/order-repo"
	planrepo "github.com/GlebRadaev/repasse/internal/repo/plan-repo"
	transactionrepo "github.com/GlebRadaev/repasse/internal/repo/transaction-repo"
)

type Repositories struct {
	OrderRepo       *orderrepo.Repository
	TransactionRepo *transactionrepo.Repository
	ModalityRepo    *modalityrepo.Repository
	PlanRepo        *planrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		OrderRepo:       orderrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		ModalityRepo:    modalityrepo.New(conn, txManager),
		PlanRepo:        planrepo.New(conn, txManager),
	}
}
