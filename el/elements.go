// This file provides one constructor per HTML tag for the el package.
package el

import "github.com/vango-dev/vdiff/pkg/vdom"

func Html(props Props, children ...any) *VNode {
	return vdom.H("html", props, children...)
}
func Head(props Props, children ...any) *VNode {
	return vdom.H("head", props, children...)
}
func Body(props Props, children ...any) *VNode {
	return vdom.H("body", props, children...)
}
func Title(props Props, children ...any) *VNode {
	return vdom.H("title", props, children...)
}
func Header(props Props, children ...any) *VNode {
	return vdom.H("header", props, children...)
}
func Footer(props Props, children ...any) *VNode {
	return vdom.H("footer", props, children...)
}
func Main(props Props, children ...any) *VNode {
	return vdom.H("main", props, children...)
}
func Nav(props Props, children ...any) *VNode {
	return vdom.H("nav", props, children...)
}
func Section(props Props, children ...any) *VNode {
	return vdom.H("section", props, children...)
}
func Article(props Props, children ...any) *VNode {
	return vdom.H("article", props, children...)
}
func Aside(props Props, children ...any) *VNode {
	return vdom.H("aside", props, children...)
}
func Div(props Props, children ...any) *VNode {
	return vdom.H("div", props, children...)
}
func Span(props Props, children ...any) *VNode {
	return vdom.H("span", props, children...)
}
func P(props Props, children ...any) *VNode {
	return vdom.H("p", props, children...)
}
func H1(props Props, children ...any) *VNode {
	return vdom.H("h1", props, children...)
}
func H2(props Props, children ...any) *VNode {
	return vdom.H("h2", props, children...)
}
func H3(props Props, children ...any) *VNode {
	return vdom.H("h3", props, children...)
}
func H4(props Props, children ...any) *VNode {
	return vdom.H("h4", props, children...)
}
func H5(props Props, children ...any) *VNode {
	return vdom.H("h5", props, children...)
}
func H6(props Props, children ...any) *VNode {
	return vdom.H("h6", props, children...)
}
func A(props Props, children ...any) *VNode {
	return vdom.H("a", props, children...)
}
func B(props Props, children ...any) *VNode {
	return vdom.H("b", props, children...)
}
func I(props Props, children ...any) *VNode {
	return vdom.H("i", props, children...)
}
func Em(props Props, children ...any) *VNode {
	return vdom.H("em", props, children...)
}
func Strong(props Props, children ...any) *VNode {
	return vdom.H("strong", props, children...)
}
func Small(props Props, children ...any) *VNode {
	return vdom.H("small", props, children...)
}
func Code(props Props, children ...any) *VNode {
	return vdom.H("code", props, children...)
}
func Pre(props Props, children ...any) *VNode {
	return vdom.H("pre", props, children...)
}
func Blockquote(props Props, children ...any) *VNode {
	return vdom.H("blockquote", props, children...)
}
func Ul(props Props, children ...any) *VNode {
	return vdom.H("ul", props, children...)
}
func Ol(props Props, children ...any) *VNode {
	return vdom.H("ol", props, children...)
}
func Li(props Props, children ...any) *VNode {
	return vdom.H("li", props, children...)
}
func Dl(props Props, children ...any) *VNode {
	return vdom.H("dl", props, children...)
}
func Dt(props Props, children ...any) *VNode {
	return vdom.H("dt", props, children...)
}
func Dd(props Props, children ...any) *VNode {
	return vdom.H("dd", props, children...)
}
func Table(props Props, children ...any) *VNode {
	return vdom.H("table", props, children...)
}
func Thead(props Props, children ...any) *VNode {
	return vdom.H("thead", props, children...)
}
func Tbody(props Props, children ...any) *VNode {
	return vdom.H("tbody", props, children...)
}
func Tr(props Props, children ...any) *VNode {
	return vdom.H("tr", props, children...)
}
func Th(props Props, children ...any) *VNode {
	return vdom.H("th", props, children...)
}
func Td(props Props, children ...any) *VNode {
	return vdom.H("td", props, children...)
}
func Form(props Props, children ...any) *VNode {
	return vdom.H("form", props, children...)
}
func Label(props Props, children ...any) *VNode {
	return vdom.H("label", props, children...)
}
func Input(props Props, children ...any) *VNode {
	return vdom.H("input", props, children...)
}
func Textarea(props Props, children ...any) *VNode {
	return vdom.H("textarea", props, children...)
}
func Select(props Props, children ...any) *VNode {
	return vdom.H("select", props, children...)
}
func Option(props Props, children ...any) *VNode {
	return vdom.H("option", props, children...)
}
func Button(props Props, children ...any) *VNode {
	return vdom.H("button", props, children...)
}
func Img(props Props, children ...any) *VNode {
	return vdom.H("img", props, children...)
}
func Br(props Props, children ...any) *VNode {
	return vdom.H("br", props, children...)
}
func Hr(props Props, children ...any) *VNode {
	return vdom.H("hr", props, children...)
}
