// This file implements a small builder for HTMX responses: HX-Trigger
// headers plus consistent fragment bodies.

package http

import (
	"encoding/json"
	"html/template"
	"net/http"
)

// HTMXResponseBuilder provides a fluent API for building HTMX responses.
type HTMXResponseBuilder struct {
	triggers   map[string]interface{}
	statusCode int
	body       []byte
}

// NewHTMXResponse creates a new response builder with default 200 status.
func NewHTMXResponse() *HTMXResponseBuilder {
	return &HTMXResponseBuilder{
		triggers:   make(map[string]interface{}),
		statusCode: http.StatusOK,
	}
}

// Status sets the HTTP status code for the response.
func (b *HTMXResponseBuilder) Status(code int) *HTMXResponseBuilder {
	b.statusCode = code
	return b
}

// Trigger adds a named trigger with optional data to the HX-Trigger header.
func (b *HTMXResponseBuilder) Trigger(name string, data interface{}) *HTMXResponseBuilder {
	b.triggers[name] = data
	return b
}

// TriggerTransactionCreated adds the transaction:created trigger.
func (b *HTMXResponseBuilder) TriggerTransactionCreated(id string) *HTMXResponseBuilder {
	return b.Trigger("transaction:created", map[string]string{"id": id})
}

// TriggerTransactionUpdated adds the transaction:updated trigger.
func (b *HTMXResponseBuilder) TriggerTransactionUpdated(id string) *HTMXResponseBuilder {
	return b.Trigger("transaction:updated", map[string]string{"id": id})
}

// TriggerTransactionDeleted adds the transaction:deleted trigger.
func (b *HTMXResponseBuilder) TriggerTransactionDeleted(id string) *HTMXResponseBuilder {
	return b.Trigger("transaction:deleted", map[string]string{"id": id})
}

// HTML sets a raw HTML fragment body.
func (b *HTMXResponseBuilder) HTML(fragment string) *HTMXResponseBuilder {
	b.body = []byte(fragment)
	return b
}

// SuccessMessage sets a success fragment with the escaped message.
func (b *HTMXResponseBuilder) SuccessMessage(msg string) *HTMXResponseBuilder {
	return b.HTML(`<div class="success">` + template.HTMLEscapeString(msg) + `</div>`)
}

// ErrorMessage sets an error fragment with the escaped message.
func (b *HTMXResponseBuilder) ErrorMessage(msg string) *HTMXResponseBuilder {
	return b.HTML(`<div class="error">` + template.HTMLEscapeString(msg) + `</div>`)
}

// Write emits the response: HX-Trigger header, status code, then body.
func (b *HTMXResponseBuilder) Write(w http.ResponseWriter) {
	if len(b.triggers) > 0 {
		if payload, err := json.Marshal(b.triggers); err == nil {
			w.Header().Set("HX-Trigger", string(payload))
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(b.statusCode)
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}

// MethodNotAllowedError builds a 405 response for the allowed methods.
func MethodNotAllowedError(allow string) *HTMXResponseBuilder {
	b := NewHTMXResponse().Status(http.StatusMethodNotAllowed)
	b.body = []byte("method not allowed, use " + allow)
	return b
}

// BadRequestError builds a 400 response with an error fragment.
func BadRequestError(msg string) *HTMXResponseBuilder {
	return NewHTMXResponse().Status(http.StatusBadRequest).ErrorMessage(msg)
}
