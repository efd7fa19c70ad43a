// Package http provides http transport for posting screening
package http

import (
	stdhttp "net/http"

	"jobguard/internal/modkit/httpkit"
	"jobguard/internal/services/screening/domain"
)

// Register mounts screening endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CheckInput](r, "/check", h.check)
	httpkit.Post(r, "/postings/{jobId}/created", h.created)
	httpkit.Get(r, "/statistics", h.statistics)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /screening/check Screening screeningCheck
// @Summary Check a posting for duplicates and suspicious patterns
// @Description Read only unless persist is set for a stored job
// @Tags Screening
// @Accept json
// @Produce json
// @Param payload body domain.CheckInput true "Stored job id or unsaved candidate"
// @Success 200 {object} domain.CheckResult "ok"
// @Failure 400 {object} httpkit.Envelope "validation"
// @Failure 404 {object} httpkit.Envelope "job not found"
// @Router /screening/check [post]
func (h *handlers) check(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	return h.svc.Check(r.Context(), in)
}

// swagger:route POST /screening/postings/{jobId}/created Screening screeningPostingCreated
// @Summary Enrich a newly created posting
// @Description Records its pattern, matches it and raises an alert when the top match is strong, never fails on store trouble
// @Tags Screening
// @Produce json
// @Param jobId path string true "job id" format(uuid)
// @Success 200 {object} domain.PostingCreatedOutcome "ok"
// @Failure 400 {object} httpkit.Envelope "bad job id"
// @Router /screening/postings/{jobId}/created [post]
func (h *handlers) created(r *stdhttp.Request) (any, error) {
	id, err := httpkit.UUIDParam(r, "jobId")
	if err != nil {
		return nil, err
	}
	return h.svc.OnPostingCreated(r.Context(), domain.PostingCreatedInput{JobID: id})
}

// swagger:route GET /screening/statistics Screening screeningStatistics
// @Summary Alert and pattern statistics
// @Tags Screening
// @Produce json
// @Success 200 {object} domain.Statistics "ok"
// @Router /screening/statistics [get]
func (h *handlers) statistics(r *stdhttp.Request) (any, error) {
	return h.svc.Statistics(r.Context())
}
