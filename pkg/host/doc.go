// Package host provides the mutable tree that patch scripts are applied to.
//
// A host tree stands in for a browser DOM: element nodes carry a tag,
// attributes, event listeners and ordered children, and text nodes carry a
// string. Every node knows its parent, so a node can be replaced or removed
// in place and addressed by the path of child indexes leading to it.
//
// # Serialization
//
// OuterHTML and InnerHTML produce deterministic HTML:
//
//	root := host.NewElement("div")
//	root.AppendChild(host.NewText("Hello"))
//	root.OuterHTML() // <div>Hello</div>
//
// Attributes are sorted by name, void elements (input, br, img, ...) have no
// closing tag, and boolean attributes with an empty value are written as a
// bare name.
//
// # Events
//
// Listeners are registered per event name and run on Dispatch, first on the
// target and then on each ancestor until a listener stops propagation.
//
// Index-based operations return *errors.VdiffError values: E201 for an index
// out of range, E202 for child access on a text node, E203 for replacing a
// detached node.
package host
