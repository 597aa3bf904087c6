package jobs

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/repasse/internal/dto"
	"github.com/GlebRadaev/repasse/pkg/utils"
)

//go:generate mockgen -source=jobs.go -destination=mock_jobs.go -package=jobs

type ReleaseRunner interface {
	AdvanceReleases(ctx context.Context, now time.Time) ([]string, error)
}

type OverdueRunner interface {
	Sweep(ctx context.Context, now time.Time) ([]string, bool, error)
}

// JobHandler triggers the background jobs on demand.
type JobHandler struct {
	releases ReleaseRunner
	overdue  OverdueRunner
	now      func() time.Time
}

func New(releases ReleaseRunner, overdue OverdueRunner) *JobHandler {
	return &JobHandler{
		releases: releases,
		overdue:  overdue,
		now:      time.Now,
	}
}

// RunReleases godoc
//
//	@Summary		Release due transactions now
//	@Tags			Jobs
//	@Produce		json
//	@Success		200	{object}	dto.ReleaseJobResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/releases [post]
func (h *JobHandler) RunReleases(w http.ResponseWriter, r *http.Request) {
	released, err := h.releases.AdvanceReleases(r.Context(), h.now())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if released == nil {
		released = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReleaseJobResponseDTO{Released: released})
}

// RunOverdue godoc
//
//	@Summary		Mark overdue installments now
//	@Tags			Jobs
//	@Produce		json
//	@Success		200	{object}	dto.OverdueJobResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/overdue [post]
func (h *JobHandler) RunOverdue(w http.ResponseWriter, r *http.Request) {
	marked, ran, err := h.overdue.Sweep(r.Context(), h.now())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if marked == nil {
		marked = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OverdueJobResponseDTO{Ran: ran, Marked: marked})
}
