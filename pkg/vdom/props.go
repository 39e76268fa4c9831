package vdom

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// IsEventHandler reports whether a prop is an event handler: an "on" key
// (any case) holding a function value.
func IsEventHandler(key string, value any) bool {
	if len(key) <= 2 || !strings.EqualFold(key[:2], "on") || value == nil {
		return false
	}
	return reflect.TypeOf(value).Kind() == reflect.Func
}

// EventName returns the event name for a handler key ("onClick" -> "click").
func EventName(key string) string {
	if len(key) <= 2 {
		return ""
	}
	return strings.ToLower(key[2:])
}

// sortedKeys returns prop keys in deterministic order.
func (p Props) sortedKeys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Keys returns the prop keys in ascending order.
func (p Props) Keys() []string {
	return p.sortedKeys()
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case nil:
		return b == nil
	}
	return reflect.DeepEqual(a, b)
}

// PropToString converts a prop value to its attribute string.
func PropToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
