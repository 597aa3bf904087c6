package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/repasse/docs"
	clienthandlers "github.com/GlebRadaev/repasse/internal/handlers/clients"
	dashboardhandlers "github.com/GlebRadaev/repasse/internal/handlers/dashboard"
	jobhandlers "github.com/GlebRadaev/repasse/internal/handlers/jobs"
	modalityhandlers "github.com/GlebRadaev/repasse/internal/handlers/modality"
	planhandlers "github.com/GlebRadaev/repasse/internal/handlers/plans"
	transactionhandlers "github.com/GlebRadaev/repasse/internal/handlers/transactions"
	"github.com/GlebRadaev/repasse/internal/service"
	"github.com/GlebRadaev/repasse/internal/telemetry"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type ModalityHandler interface {
	GetEffective(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	CreateForOrder(w http.ResponseWriter, r *http.Request)
	ConfirmPayout(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type PlanHandler interface {
	CreatePlan(w http.ResponseWriter, r *http.Request)
	GetPlan(w http.ResponseWriter, r *http.Request)
	CancelPlan(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	RunReleases(w http.ResponseWriter, r *http.Request)
	RunOverdue(w http.ResponseWriter, r *http.Request)
}

type ClientHandler interface {
	GetDelinquency(w http.ResponseWriter, r *http.Request)
	GetDeletionEligibility(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	GetSettlement(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ModalityHandler    ModalityHandler
	TransactionHandler TransactionHandler
	PlanHandler        PlanHandler
	JobHandler         JobHandler
	ClientHandler      ClientHandler
	DashboardHandler   DashboardHandler
	Metrics            *telemetry.Metrics
}

func New(s *service.Services, releases jobhandlers.ReleaseRunner, overdue jobhandlers.OverdueRunner, metrics *telemetry.Metrics) *Handlers {
	return &Handlers{
		ModalityHandler:    modalityhandlers.New(s.ModalityService),
		TransactionHandler: transactionhandlers.New(s.TransactionService),
		PlanHandler:        planhandlers.New(s.PlanService),
		JobHandler:         jobhandlers.New(releases, overdue),
		ClientHandler:      clienthandlers.New(s.DelinquencyService),
		DashboardHandler:   dashboardhandlers.New(s.DashboardService),
		Metrics:            metrics,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(h.Metrics.Middleware)

		r.Route("/modality", func(r chi.Router) {
			r.Get("/", h.ModalityHandler.GetEffective)
			r.Put("/", h.ModalityHandler.Activate)
		})
		r.Post("/orders/{orderID}/transaction", h.TransactionHandler.CreateForOrder)
		r.Route("/transactions/{id}", func(r chi.Router) {
			r.Post("/payout", h.TransactionHandler.ConfirmPayout)
			r.Post("/cancel", h.TransactionHandler.Cancel)
		})
		r.Route("/plans", func(r chi.Router) {
			r.Post("/", h.PlanHandler.CreatePlan)
			r.Get("/{id}", h.PlanHandler.GetPlan)
			r.Post("/{id}/cancel", h.PlanHandler.CancelPlan)
		})
		r.Post("/installments/{id}/payment", h.PlanHandler.RecordPayment)
		r.Route("/jobs", func(r chi.Router) {
			r.Post("/releases", h.JobHandler.RunReleases)
			r.Post("/overdue", h.JobHandler.RunOverdue)
		})
		r.Get("/clients/{id}/delinquency", h.ClientHandler.GetDelinquency)
		r.Get("/users/{id}/deletion-eligibility", h.ClientHandler.GetDeletionEligibility)
		r.Get("/dashboard/settlement", h.DashboardHandler.GetSettlement)
	})

	return r
}
