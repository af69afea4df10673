// Package httpvalidator validates HTTP request and response bodies
// against a schema tree.
//
// A Validator is bound to one schema at construction and may validate
// any number of messages concurrently:
//
//	v, err := httpvalidator.New(schema)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := v.ValidateRequest(req)
//	if !result.Valid {
//	    // reject the request
//	}
//
// Bodies are decoded as JSON or YAML and validated with the validator
// package, so results carry the same structured errors: a path into the
// body, the failing keyword, and a message. A body that fails to decode
// is a validation failure, not a Go error; the error return is reserved
// for malformed schemas and body-size limits.
//
// The Middleware method wraps an http.Handler and rejects nonconforming
// request bodies with 422 Unprocessable Entity and a JSON error list.
package httpvalidator
