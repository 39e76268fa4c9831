package vdom

import (
	"encoding/json"
	"testing"

	"github.com/vango-dev/vdiff/internal/errors"
)

func TestScriptJSONAddChild(t *testing.T) {
	prev := H("div", nil, H("p", nil, "Hello"))
	next := H("div", nil, H("p", nil, "Hello"), H("span", nil, "New Child"))

	data, err := json.Marshal(Diff(prev, next))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `[{"index":1,"patches":[{"type":"ADD","newVNode":{"type":"span","props":{"children":["New Child"]}}}]}]`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestScriptJSONShapes(t *testing.T) {
	tests := []struct {
		name   string
		script Script
		want   string
	}{
		{"nil script", nil, `[]`},
		{"remove", Script{Remove()}, `[{"type":"REMOVE"}]`},
		{"text", Script{At(0, SetText("New"))}, `[{"index":0,"patches":[{"type":"TEXT","newText":"New"}]}]`},
		{"replace", Script{Replace(H("b", nil))}, `[{"type":"REPLACE","newVNode":{"type":"b","props":{"children":[]}}}]`},
		{"empty nested", Script{At(3)}, `[{"index":3,"patches":[]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.script)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("got  %s\nwant %s", data, tt.want)
			}
		})
	}
}

func TestNodeJSONOmitsHandlers(t *testing.T) {
	node := H("button", Props{"id": "inc", "onclick": func() {}}, "Increment")

	data, err := json.Marshal(node)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"type":"button","props":{"children":["Increment"],"id":"inc"}}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestPatchUnmarshal(t *testing.T) {
	input := `[
		{"index": 0, "patches": [{"type": "TEXT", "newText": "hi"}]},
		{"index": 2, "patches": [{"type": "REMOVE"}]},
		{"type": "REPLACE", "newVNode": {"type": "p", "props": {"class": "x", "children": ["y"]}}}
	]`

	var got Script
	if err := json.Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	assertScript(t, got, Script{
		At(0, SetText("hi")),
		At(2, Remove()),
		Replace(H("p", Props{"class": "x"}, "y")),
	})
}

func TestPatchUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
	}{
		{"unknown type", `{"type":"MOVE"}`, "E402"},
		{"no type or index", `{"patches":[]}`, "E402"},
		{"replace without node", `{"type":"REPLACE"}`, "E401"},
		{"not an object", `42`, "E401"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Patch
			err := json.Unmarshal([]byte(tt.input), &p)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Code(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}
}

func TestFromValue(t *testing.T) {
	raw := map[string]any{
		"type":  "ul",
		"props": map[string]any{"id": "list"},
		"children": []any{
			map[any]any{"type": "li", "children": []any{"one"}},
			nil,
			map[string]any{"type": "li", "props": map[string]any{"children": []any{float64(2)}}},
		},
	}

	got, err := FromValue(raw)
	if err != nil {
		t.Fatalf("FromValue: %v", err)
	}
	want := H("ul", Props{"id": "list"},
		H("li", nil, "one"),
		H("li", nil, "2"),
	)
	if !Equal(got, want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFromValueErrors(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"list at root", []any{"a"}},
		{"numeric type", map[string]any{"type": 3}},
		{"props not a mapping", map[string]any{"type": "div", "props": "x"}},
		{"children not a list", map[string]any{"type": "div", "props": map[string]any{"children": "x"}}},
		{"bad grandchild", map[string]any{"type": "div", "children": []any{
			map[string]any{"type": "p", "children": []any{[]any{}}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromValue(tt.input)
			if errors.Code(err) != "E301" {
				t.Errorf("err = %v, want E301", err)
			}
		})
	}
}
