// Package domain holds DTOs for the domains http and service contracts
package domain

import "time"

// Length comparison operators for ListInput.CharLengthOp
const (
	OpEq = "eq"
	OpGt = "gt"
	OpLt = "lt"
)

// ListInput filters and pages stored available domains
// absent values take defaults; an unknown char_length_op drops the length filter
type ListInput struct {
	SearchRequestID string `query:"search_request_id" json:"search_request_id,omitempty" validate:"omitempty,max=64" example:"4f9c1c9e-8a7e-4f39-bb0a-1c0c3f7f8d11"`
	Page            *int   `query:"page" json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	PageSize        *int   `query:"page_size" json:"page_size,omitempty" validate:"omitempty,min=1,max=500" example:"64"`
	TLD             string `query:"tld" json:"tld,omitempty" validate:"omitempty,tld" example:"com"`
	CharLength      *int   `query:"char_length" json:"char_length,omitempty" validate:"omitempty,min=0" example:"6"`
	CharLengthOp    string `query:"char_length_op" json:"char_length_op,omitempty" example:"eq"`
}

// DomainRow is one stored available domain as served to clients
type DomainRow struct {
	Domain            string    `json:"domain" example:"tealeaf.com"`
	PriorityInRanking *int64    `json:"priority_in_ranking" swaggertype:"integer"`
	CreatedAt         time.Time `json:"created_at" example:"2025-08-01T12:00:00Z"`
}

// Pagination mirrors the page metadata of the list endpoint
type Pagination struct {
	CurrentPage int `json:"current_page" example:"1"`
	PageSize    int `json:"page_size" example:"64"`
	TotalPages  int `json:"total_pages" example:"3"`
	TotalCount  int `json:"total_count" example:"150"`
}

// ListResult is the list endpoint body
type ListResult struct {
	Domains    []DomainRow `json:"domains"`
	Pagination Pagination  `json:"pagination"`
}

// GenerateInput is the generate and check request body
type GenerateInput struct {
	Request      string   `json:"request" validate:"required,max=4000" example:"a cozy tea shop brand"`
	SimilarTo    string   `json:"similar_to,omitempty" validate:"omitempty,max=500" example:"brew.io"`
	WordLength   FlexText `json:"word_length,omitempty" swaggertype:"string" example:"6"`
	AcceptedTLDs FlexList `json:"accepted_tlds,omitempty" swaggertype:"array,string" example:"com,io"`
}

// GenerateResult is the generate and check response body
type GenerateResult struct {
	Domains         []DomainRow `json:"domains"`
	SearchRequestID string      `json:"search_request_id" example:"4f9c1c9e-8a7e-4f39-bb0a-1c0c3f7f8d11"`
	DomainsFound    int         `json:"domains_found" example:"4"`
}

// CheckInput is the single availability query
type CheckInput struct {
	Domain string `query:"domain" json:"domain" validate:"required,max=253" example:"tealeaf.com"`
}

// CheckResult answers the single availability query
type CheckResult struct {
	Domain    string `json:"domain" example:"tealeaf.com"`
	Available bool   `json:"available" example:"true"`
}
