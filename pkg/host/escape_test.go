package host

import "testing"

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"plain text", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"angle brackets", "a < b > c", "a &lt; b &gt; c"},
		{"quotes kept", `say "it's"`, `say "it's"`},
		{"script tag", "<script>alert('xss')</script>", "&lt;script&gt;alert('xss')&lt;/script&gt;"},
		{"non-breaking space", "a\u00a0b", "a&nbsp;b"},
		{"unicode preserved", "Hello 世界 🌍", "Hello 世界 🌍"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeText(tt.input); got != tt.expected {
				t.Errorf("escapeText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"plain text", "hello", "hello"},
		{"ampersand", "a&b", "a&amp;b"},
		{"double quote", `value="test"`, "value=&quot;test&quot;"},
		{"single quote kept", "it's", "it's"},
		{"whitespace kept", "line1\nline2\tx", "line1\nline2\tx"},
		{"all special chars", `<>&"` + "\u00a0", "&lt;&gt;&amp;&quot;&nbsp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeAttr(tt.input); got != tt.expected {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func BenchmarkEscapeText(b *testing.B) {
	b.Run("plain text", func(b *testing.B) {
		s := "Hello, World! This is a plain text string without special characters."
		for i := 0; i < b.N; i++ {
			escapeText(s)
		}
	})

	b.Run("with special chars", func(b *testing.B) {
		s := `<script>alert("xss")</script> & more content here`
		for i := 0; i < b.N; i++ {
			escapeText(s)
		}
	})
}
