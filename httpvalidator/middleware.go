package httpvalidator

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/erraggy/treeschema/valerrors"
)

// middlewareError is one entry in the middleware's JSON error response.
type middlewareError struct {
	Path    string `json:"path"`
	Keyword string `json:"keyword,omitempty"`
	Message string `json:"message"`
}

// middlewareResponse is the JSON body written for rejected requests.
type middlewareResponse struct {
	Valid  bool              `json:"valid"`
	Errors []middlewareError `json:"errors"`
}

// Middleware wraps a handler and validates request bodies against the
// bound schema. Nonconforming bodies are rejected with 422 Unprocessable
// Entity and a JSON error list; oversized bodies get 413 and schema
// defects 500. The body is restored before the wrapped handler runs.
func (v *Validator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := getRequestResult()
		defer putRequestResult(result)

		err := v.validateRequestInto(result, r)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, valerrors.ErrResourceLimit) {
				status = http.StatusRequestEntityTooLarge
			}
			http.Error(w, http.StatusText(status), status)
			return
		}

		if !result.Valid {
			writeValidationFailure(w, result)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeValidationFailure renders a 422 with the result's errors as JSON.
func writeValidationFailure(w http.ResponseWriter, result *RequestValidationResult) {
	resp := middlewareResponse{
		Errors: make([]middlewareError, 0, len(result.Errors)),
	}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, middlewareError{
			Path:    e.Path.String(),
			Keyword: e.Keyword,
			Message: e.Message,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(resp)
}
