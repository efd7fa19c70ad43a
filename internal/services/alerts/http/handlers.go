// Package http provides http transport for duplicate alerts
package http

import (
	stdhttp "net/http"

	"jobguard/internal/modkit/httpkit"
	"jobguard/internal/services/alerts/domain"
)

// Register mounts alert endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ReviewInput](r, "/{alertId}/review", h.review)
	httpkit.Get(r, "/pending", h.pending)
	httpkit.Get(r, "/employers/{employerId}", h.forEmployer)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /alerts/{alertId}/review Alerts alertsReview
// @Summary Review a duplicate alert
// @Description Confirming with action removed or flagged mutates the duplicate posting in the same transaction
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alertId path string true "alert id" format(uuid)
// @Param payload body domain.ReviewInput true "Decision"
// @Success 200 {object} domain.Alert "ok"
// @Failure 400 {object} httpkit.Envelope "validation"
// @Failure 404 {object} httpkit.Envelope "alert not found"
// @Failure 409 {object} httpkit.Envelope "alert already reviewed"
// @Router /alerts/{alertId}/review [post]
func (h *handlers) review(r *stdhttp.Request, in domain.ReviewInput) (any, error) {
	id, err := httpkit.UUIDParam(r, "alertId")
	if err != nil {
		return nil, err
	}
	in.AlertID = id
	return h.svc.Review(r.Context(), in)
}

// swagger:route GET /alerts/pending Alerts alertsPending
// @Summary List pending duplicate alerts, oldest first
// @Tags Alerts
// @Produce json
// @Param limit query int false "page size" default(50)
// @Success 200 {array} domain.Alert "ok"
// @Router /alerts/pending [get]
func (h *handlers) pending(r *stdhttp.Request) (any, error) {
	limit, err := httpkit.QueryInt(r, "limit", 0)
	if err != nil {
		return nil, err
	}
	return h.svc.ListPending(r.Context(), limit)
}

// swagger:route GET /alerts/employers/{employerId} Alerts alertsForEmployer
// @Summary List alerts touching an employer's postings
// @Tags Alerts
// @Produce json
// @Param employerId path string true "employer id"
// @Success 200 {array} domain.Alert "ok"
// @Router /alerts/employers/{employerId} [get]
func (h *handlers) forEmployer(r *stdhttp.Request) (any, error) {
	return h.svc.ListForEmployer(r.Context(), httpkit.Param(r, "employerId"))
}
