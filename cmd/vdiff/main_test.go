package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/vango-dev/vdiff/internal/errors"
)

// run executes the CLI against an in-memory filesystem holding files.
func run(t *testing.T, files map[string]string, args ...string) (string, afero.Fs, error) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		if err := afero.WriteFile(fs, name, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	saved := appFs
	appFs = fs
	t.Cleanup(func() { appFs = saved })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), fs, err
}

var trees = map[string]string{
	"old.yaml": "type: div\nprops:\n  children:\n    - type: p\n      props: {children: [Old]}\n",
	"new.yaml": "type: div\nprops:\n  children:\n    - type: p\n      props: {children: [New]}\n    - type: hr\n",
	"bad.txt":  "nope",
}

func TestDiffTree(t *testing.T) {
	out, _, err := run(t, trees, "diff", "old.yaml", "new.yaml")
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	for _, want := range []string{"script (2 patches)", "[0]", `TEXT "New"`, "[1]", "ADD <hr>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDiffFormats(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"json", []string{`"type": "TEXT"`, `"index": 1`, `"type": "ADD"`}},
		{"jsonpatch", []string{`"path": "/props/children/0/props/children/0"`, `"path": "/props/children/-"`, "reproduces the new tree"}},
		{"binary", []string{"00000000"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, _, err := run(t, trees, "diff", "old.yaml", "new.yaml", "--format", tt.format, "--check")
			if err != nil {
				t.Fatalf("diff: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestDiffErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"missing file", []string{"diff", "old.yaml", "gone.yaml"}, "E302"},
		{"bad extension", []string{"diff", "old.yaml", "bad.txt"}, "E303"},
		{"bad color", []string{"diff", "old.yaml", "new.yaml", "--color", "pink"}, "E122"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, trees, tt.args...)
			if got := errors.Code(err); got != tt.code {
				t.Errorf("code = %q, want %q (%v)", got, tt.code, err)
			}
		})
	}

	if _, _, err := run(t, trees, "diff", "old.yaml", "new.yaml", "--format", "xml"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestRender(t *testing.T) {
	out, fs, err := run(t, trees, "render", "old.yaml", "new.yaml", "--out", "site", "--show-diff")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{"old.yaml mounted", "new.yaml 2 patches", "[-Old-]", "{+New+}"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	files := map[string]string{
		"site/old.html": "<div><p>Old</p></div>",
		"site/new.html": "<div><p>New</p><hr></div>",
	}
	for name, want := range files {
		got, err := afero.ReadFile(fs, name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestRenderUsesConfig(t *testing.T) {
	files := map[string]string{
		"old.yaml":   trees["old.yaml"],
		"vdiff.json": `{"export": {"dir": "public"}}`,
	}
	_, fs, err := run(t, files, "render", "old.yaml")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if ok, _ := afero.Exists(fs, "public/old.html"); !ok {
		t.Error("public/old.html was not written")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, nil, "version", "--short")
	if err != nil || out != "dev\n" {
		t.Errorf("version --short = %q, %v", out, err)
	}
}

func TestHTMLDiff(t *testing.T) {
	if got := htmlDiff("<p>a</p>", "<p>a</p>"); got != "(no change)" {
		t.Errorf("htmlDiff(same) = %q", got)
	}
}
