// Package errors provides structured, coded errors for vdiff.
//
// Every error carries a short code (e.g. "E201") that maps to a registered
// template with a category, a one-line message, a longer detail and a
// documentation link. Builders attach context:
//
//	err := errors.New("E301").
//	    WithDetail("tree.yaml: props must be a mapping").
//	    WithSuggestion("Write props as `props: {id: main}`")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E301: Invalid tree document
//	//
//	//   tree.yaml: props must be a mapping
//	//
//	//   Hint: Write props as `props: {id: main}`
//
// # Categories
//
//   - config: vdiff.json loading and validation
//   - apply: host tree and patch script out of sync (raised as panics)
//   - tree: tree document decoding
//   - protocol: binary wire frames
//   - export: writing rendered output
package errors
