// Package api defines the request and response shapes exchanged with the
// Schlep-engine platform, plus the wire-level error envelope.
package api

import (
	"net/url"
	"strconv"
)

// ErrorResponse is the JSON body the platform returns for non-2xx statuses.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListParams carries optional pagination and filtering for list endpoints.
// Zero-valued fields are omitted from the query string.
type ListParams struct {
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
	Status   string `json:"status,omitempty"`
}

// Values encodes the params as URL query parameters.
func (p *ListParams) Values() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	return q
}

// PaginatedResponse wraps one page of a list endpoint. Items keep the order
// the server returned them in.
type PaginatedResponse[T any] struct {
	Items      []T `json:"items" validate:"dive"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}
