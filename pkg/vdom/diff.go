package vdom

// Diff compares two trees and returns the patches needed to transform prev
// into next. The result is empty (nil) when the trees are identical.
//
// A nil prev yields a single ADD and a nil next a single REMOVE, so Diff is
// total over absent nodes as well.
func Diff(prev, next *VNode) Script {
	switch {
	case prev == nil && next == nil:
		return nil
	case prev == nil:
		return Script{Add(next)}
	case next == nil:
		return Script{Remove()}
	}
	return diff(prev, next)
}

// diff compares two present nodes.
func diff(prev, next *VNode) Script {
	// Different kind or tag - replace, no descent
	if prev.Kind != next.Kind || (prev.Kind == KindElement && prev.Tag != next.Tag) {
		return Script{Replace(next)}
	}

	if prev.Kind == KindText {
		if prev.Text != next.Text {
			return Script{SetText(next.Text)}
		}
		return nil
	}

	// An element holding a single text leaf on both sides changes its text
	// content in place; the TEXT targets the element, not the leaf.
	if prevText, ok := soleText(prev); ok {
		if nextText, ok := soleText(next); ok {
			if prevText != nextText {
				return Script{SetText(nextText)}
			}
			return nil
		}
	}

	return diffChildren(prev.Children, next.Children)
}

// soleText returns the text of an element whose only child is a text leaf.
func soleText(v *VNode) (string, bool) {
	if len(v.Children) != 1 || !v.Children[0].IsText() {
		return "", false
	}
	return v.Children[0].Text, true
}

// diffChildren compares child lists by position.
func diffChildren(prev, next []*VNode) Script {
	maxLen := len(prev)
	if len(next) > maxLen {
		maxLen = len(next)
	}

	var patches Script
	for i := 0; i < maxLen; i++ {
		switch {
		case i >= len(prev):
			patches = append(patches, At(i, Add(next[i])))
		case i >= len(next):
			patches = append(patches, At(i, Remove()))
		default:
			if sub := Diff(prev[i], next[i]); len(sub) > 0 {
				patches = append(patches, At(i, sub...))
			}
		}
	}
	return patches
}
