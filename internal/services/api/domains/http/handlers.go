// Package http provides http transport for domains
package http

import (
	stdhttp "net/http"

	"seekdomains/internal/modkit/httpkit"
	"seekdomains/internal/services/api/domains/domain"
)

// Register mounts domains endpoints on the given router
// bodies are written bare; errors still use the envelope
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	// read path
	httpkit.GetQuery[domain.ListInput](r, "/available_domains", h.list)

	// write path; extra body keys are ignored
	httpkit.PostJSON[domain.GenerateInput](r, "/generate_and_check_domains", h.generate,
		httpkit.JSONOptions{MaxBytes: 1 << 20})

	// one-off availability
	httpkit.GetQuery[domain.CheckInput](r, "/check_domain_availability", h.check)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /available_domains Domains listAvailableDomains
// @Summary List stored available domains
// @Tags Domains
// @Produce json
// @Param search_request_id query string false "Search request id"
// @Param page query int false "Page, 1-based" default(1)
// @Param page_size query int false "Page size" default(64)
// @Param tld query string false "Suffix filter, com does not match com.au"
// @Param char_length query int false "Local part length"
// @Param char_length_op query string false "eq, gt or lt"
// @Success 200 {object} domain.ListResult "ok"
// @Router /available_domains [get]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	res, err := h.svc.List(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Bare(res), nil
}

// swagger:route POST /generate_and_check_domains Domains generateAndCheckDomains
// @Summary Generate candidate names, check availability and store the available ones
// @Tags Domains
// @Accept json
// @Produce json
// @Param payload body domain.GenerateInput true "Request"
// @Success 200 {object} domain.GenerateResult "ok"
// @Router /generate_and_check_domains [post]
func (h *handlers) generate(r *stdhttp.Request, in domain.GenerateInput) (any, error) {
	res, err := h.svc.GenerateAndCheck(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Bare(res), nil
}

// swagger:route GET /check_domain_availability Domains checkDomainAvailability
// @Summary Check a single domain
// @Tags Domains
// @Produce json
// @Param domain query string true "Domain"
// @Success 200 {object} domain.CheckResult "ok"
// @Router /check_domain_availability [get]
func (h *handlers) check(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	res, err := h.svc.Check(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Bare(res), nil
}
