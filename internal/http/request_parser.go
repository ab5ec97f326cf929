// This file implements utilities for parsing and validating HTTP request
// data shared by the transaction handlers.

package http

import (
	"net/http"
	"net/url"
	"strings"

	"fbmobile/internal/form"
)

// RequireMethod checks if the request method matches the expected
// method(s). Returns an error response builder if the method doesn't
// match.
func RequireMethod(r *http.Request, methods ...string) *HTMXResponseBuilder {
	for _, m := range methods {
		if r.Method == m {
			return nil
		}
	}
	return MethodNotAllowedError(strings.Join(methods, ", "))
}

// RequirePOST is a convenience function for POST-only handlers.
func RequirePOST(r *http.Request) *HTMXResponseBuilder {
	return RequireMethod(r, http.MethodPost)
}

// RequireDeleteOrPOST is a convenience function for DELETE/POST handlers.
func RequireDeleteOrPOST(r *http.Request) *HTMXResponseBuilder {
	return RequireMethod(r, http.MethodDelete, http.MethodPost)
}

// ParseFormOrFail parses the request form and returns an error response
// on failure. Returns nil on success.
func ParseFormOrFail(r *http.Request) *HTMXResponseBuilder {
	if err := r.ParseForm(); err != nil {
		return BadRequestError("รูปแบบคำขอไม่ถูกต้อง")
	}
	return nil
}

// parseFormInput builds sanitized form input from the parsed request.
func parseFormInput(values url.Values) form.Input {
	get := func(key string) string {
		return sanitizeInput(values.Get(key))
	}
	return form.Input{
		Date:         get("date"),
		Category:     get("category"),
		Model:        get("model"),
		ModelOther:   get("model_other"),
		DeviceModel:  get("device_model"),
		RepairDetail: get("repair_detail"),
		Cost:         get("cost"),
		Price:        get("price"),
	}
}
