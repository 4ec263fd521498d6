// Package httpx provides HTTP response utilities following RFC7807 problem details.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ProblemDetail represents RFC7807 problem details.
type ProblemDetail struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// ListMeta carries pagination metadata alongside list payloads.
type ListMeta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Envelope is the uniform response shape for resource endpoints:
// { success, data, summary?, meta? }.
type Envelope struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Summary any       `json:"summary,omitempty"`
	Meta    *ListMeta `json:"meta,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// OK wraps data in a success envelope without list metadata.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// List wraps a page of rows plus summary and pagination metadata.
func List(w http.ResponseWriter, data, summary any, meta ListMeta) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data, Summary: summary, Meta: &meta})
}

// Created wraps a freshly created resource in a success envelope.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// Problem sends an RFC7807 problem details response.
func Problem(w http.ResponseWriter, status int, title, detail string) {
	JSON(w, status, ProblemDetail{
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

// DecodeJSON decodes JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
