// Package treeschema provides declarative validation of dynamically shaped
// data trees (the result of parsing JSON or YAML text) against schemas
// expressed in the same tree shape.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - value: the tagged-union Value model shared by instances and schemas
//   - parser: decode JSON/YAML text into Value trees
//   - validator: validate an instance tree against a schema tree
//   - httpvalidator: validate HTTP request/response bodies against a schema
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/treeschema
//
// # Quick Start
//
// Parse a document and a schema, then validate:
//
//	import (
//		"github.com/erraggy/treeschema/parser"
//		"github.com/erraggy/treeschema/validator"
//	)
//
//	p := parser.New()
//	instance, err := p.Parse("order.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	schema, err := p.Parse("order-schema.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	v := validator.New()
//	result, err := v.Validate(instance.Document, schema.Document)
//	if err != nil {
//		log.Fatal(err) // malformed schema, not invalid data
//	}
//	if !result.Valid {
//		for _, e := range result.Errors {
//			fmt.Println(e)
//		}
//	}
//
// Invalid instance data is never a Go error: every violation is collected
// into the returned ValidationResult. Only a malformed schema (unknown type
// name, unknown format, invalid pattern, wrongly kinded keyword value)
// aborts a call, surfacing as a valerrors.SchemaError.
//
// # Command Line
//
// The treeschema CLI wraps the library:
//
//	treeschema validate -schema schema.json instance.json
//	treeschema parse instance.yaml
//	treeschema formats
//	treeschema mcp
package treeschema
