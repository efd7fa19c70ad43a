// Package http provides http transport for posting patterns
package http

import (
	stdhttp "net/http"

	"jobguard/internal/modkit/httpkit"
	"jobguard/internal/services/patterns/domain"
)

// Register mounts pattern endpoints on the given router
// threshold is the default cut for the suspicious listing
func Register(r httpkit.Router, s domain.ServicePort, threshold float64) {
	h := &handlers{svc: s, threshold: threshold}

	httpkit.PostJSON[domain.RecordInput](r, "/record", h.record)
	httpkit.Get(r, "/suspicious", h.suspicious)
	httpkit.Get(r, "/employers/{employerId}", h.forEmployer)
}

type handlers struct {
	svc       domain.ServicePort
	threshold float64
}

// swagger:route POST /patterns/record Patterns patternsRecord
// @Summary Record a created posting against its pattern
// @Description Best effort, store failures come back as recorded false
// @Tags Patterns
// @Accept json
// @Produce json
// @Param payload body domain.RecordInput true "Posting"
// @Success 200 {object} domain.RecordResult "ok"
// @Failure 400 {object} httpkit.Envelope "validation"
// @Router /patterns/record [post]
func (h *handlers) record(r *stdhttp.Request, in domain.RecordInput) (any, error) {
	return h.svc.RecordPosting(r.Context(), in)
}

// swagger:route GET /patterns/suspicious Patterns patternsSuspicious
// @Summary List suspicious posting patterns
// @Tags Patterns
// @Produce json
// @Param threshold query number false "minimum suspicious score" default(0.7)
// @Param limit query int false "page size" default(50)
// @Success 200 {array} domain.Pattern "ok"
// @Router /patterns/suspicious [get]
func (h *handlers) suspicious(r *stdhttp.Request) (any, error) {
	th, err := httpkit.QueryFloat(r, "threshold", h.threshold)
	if err != nil {
		return nil, err
	}
	limit, err := httpkit.QueryInt(r, "limit", 0)
	if err != nil {
		return nil, err
	}
	return h.svc.ListSuspicious(r.Context(), th, limit)
}

// swagger:route GET /patterns/employers/{employerId} Patterns patternsForEmployer
// @Summary List an employer's posting patterns
// @Tags Patterns
// @Produce json
// @Param employerId path string true "employer id"
// @Success 200 {array} domain.Pattern "ok"
// @Router /patterns/employers/{employerId} [get]
func (h *handlers) forEmployer(r *stdhttp.Request) (any, error) {
	return h.svc.ListForEmployer(r.Context(), httpkit.Param(r, "employerId"))
}
