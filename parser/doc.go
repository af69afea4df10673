// Package parser decodes JSON or YAML text into the generic value trees
// consumed by the validator package.
//
// The parser is the upstream collaborator of the validation core: its only
// contract is to produce a value.Value tree from raw input. It performs no
// validation itself.
//
// # Usage
//
//	p := parser.New()
//	result, err := p.Parse("order.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Document.Kind())
//
// Both source formats decode through one path: YAML is a superset of JSON,
// so a JSON document is valid YAML. The SourceFormat field records which
// syntax the input appeared to use.
package parser
