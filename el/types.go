package el

import "github.com/vango-dev/vdiff/pkg/vdom"

// Type aliases for the vdom primitives used by the DSL.
type VNode = vdom.VNode
type VKind = vdom.VKind
type Props = vdom.Props
