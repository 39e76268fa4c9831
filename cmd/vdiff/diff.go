package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/vango-dev/vdiff/internal/errors"
	"github.com/vango-dev/vdiff/internal/treefile"
	"github.com/vango-dev/vdiff/pkg/jsonpatch"
	"github.com/vango-dev/vdiff/pkg/protocol"
	"github.com/vango-dev/vdiff/pkg/vdom"
)

func diffCmd(c *cli) *cobra.Command {
	var (
		format string
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Print the patch script between two tree documents",
		Long: `Print the patch script that turns the tree in OLD into the tree in NEW.
Tree documents are YAML (.yaml, .yml) or JSON (.json).

Formats:
  tree       indented patch tree (default)
  json       the wire form of the script
  jsonpatch  RFC 6902 operations over the JSON form of OLD
  binary     hex dump of the binary protocol encoding

Examples:
  vdiff diff before.yaml after.yaml
  vdiff diff before.json after.json --format jsonpatch --check`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			old, err := treefile.Load(appFs, args[0])
			if err != nil {
				return err
			}
			next, err := treefile.Load(appFs, args[1])
			if err != nil {
				return err
			}
			script := vdom.Diff(old, next)
			c.logger.Debug("diff computed", "old", args[0], "new", args[1], "patches", script.Len())
			return writeDiff(cmd.OutOrStdout(), format, old, next, script, check)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "tree", "Output format: tree, json, jsonpatch, binary")
	cmd.Flags().BoolVar(&check, "check", false, "With --format jsonpatch, apply the operations to OLD and verify the result is NEW")
	return cmd
}

func writeDiff(w io.Writer, format string, old, next *vdom.VNode, script vdom.Script, check bool) error {
	switch format {
	case "tree":
		fmt.Fprint(w, scriptTree(script).String())
		return nil

	case "json":
		data, err := json.MarshalIndent(script, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil

	case "jsonpatch":
		ops, err := jsonpatch.FromScript(old, script)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(ops, "", "  ")
		if err != nil {
			return err
		}
		if ops == nil {
			data = []byte("[]")
		}
		fmt.Fprintln(w, string(data))
		if check {
			if err := checkJSONPatch(old, next, ops); err != nil {
				return err
			}
			success(w, "JSON patch reproduces the new tree")
		}
		return nil

	case "binary":
		e := protocol.NewEncoder()
		protocol.EncodeScript(e, script)
		fmt.Fprint(w, hex.Dump(e.Bytes()))
		return nil
	}
	return errors.Newf(errors.CategoryCLI, "unknown format %q", format).
		WithSuggestion("Use tree, json, jsonpatch or binary")
}

// checkJSONPatch applies ops to the JSON form of old and compares the
// result with the JSON form of next.
func checkJSONPatch(old, next *vdom.VNode, ops []jsonpatch.Operation) error {
	doc, err := json.Marshal(old)
	if err != nil {
		return err
	}
	want, err := json.Marshal(next)
	if err != nil {
		return err
	}
	got, err := jsonpatch.Apply(doc, ops)
	if err != nil {
		return err
	}

	var gotValue, wantValue any
	if err := json.Unmarshal(got, &gotValue); err != nil {
		return err
	}
	if err := json.Unmarshal(want, &wantValue); err != nil {
		return err
	}
	if diff := cmp.Diff(wantValue, gotValue); diff != "" {
		return errors.Newf(errors.CategoryCLI, "JSON patch does not reproduce the new tree").
			WithDetail(diff)
	}
	return nil
}

var (
	replaceColor = color.New(color.FgYellow).SprintFunc()
	textColor    = color.New(color.FgCyan).SprintFunc()
	addColor     = color.New(color.FgGreen).SprintFunc()
	removeColor  = color.New(color.FgRed).SprintFunc()
	indexColor   = color.New(color.FgHiBlack).SprintFunc()
)

// scriptTree lays a script out as a tree: one branch per child index.
func scriptTree(script vdom.Script) treeprint.Tree {
	tree := treeprint.NewWithRoot(fmt.Sprintf("script (%d patches)", script.Len()))
	addPatches(tree, script)
	return tree
}

func addPatches(tree treeprint.Tree, script vdom.Script) {
	for _, p := range script {
		switch p.Type {
		case vdom.PatchNested:
			addPatches(tree.AddBranch(indexColor(fmt.Sprintf("[%d]", p.Index))), p.Patches)
		case vdom.PatchReplace:
			tree.AddNode(replaceColor("REPLACE ") + p.Node.String())
		case vdom.PatchText:
			tree.AddNode(textColor("TEXT ") + fmt.Sprintf("%q", p.Text))
		case vdom.PatchAdd:
			tree.AddNode(addColor("ADD ") + p.Node.String())
		case vdom.PatchRemove:
			tree.AddNode(removeColor("REMOVE"))
		}
	}
}
