package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vdiff/internal/export"
	"github.com/vango-dev/vdiff/internal/treefile"
	"github.com/vango-dev/vdiff/pkg/host"
	"github.com/vango-dev/vdiff/pkg/render"
)

func renderCmd(c *cli) *cobra.Command {
	var (
		out      string
		toS3     bool
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render tree documents in sequence and export the HTML",
		Long: `Render each tree document into the same host root, in order. The first
file mounts; every later file is diffed against the previous one and patched
in place. The HTML after each step is exported as <name>.html.

Examples:
  vdiff render v1.yaml v2.yaml --show-diff
  vdiff render page.json --out public
  vdiff render page.json --s3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = c.cfg.Export.Dir
			}
			sinks := export.Multi{}
			fileSink, err := export.NewFileSink(appFs, out)
			if err != nil {
				return err
			}
			sinks = append(sinks, fileSink)
			if toS3 {
				s3Sink, err := export.NewS3SinkFromConfig(c.cfg.Export.S3)
				if err != nil {
					return err
				}
				sinks = append(sinks, s3Sink)
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), render.New(render.WithLogger(c.logger)), sinks, args, showDiff)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output directory (default export.dir from vdiff.json)")
	cmd.Flags().BoolVar(&toS3, "s3", false, "Also upload to the bucket in export.s3")
	cmd.Flags().BoolVar(&showDiff, "show-diff", false, "Print a text diff of the HTML between steps")
	return cmd
}

func runRender(ctx context.Context, w io.Writer, r *render.Renderer, sink export.Sink, files []string, showDiff bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	root := host.NewElement("body")
	var prev string

	for i, file := range files {
		tree, err := treefile.Load(appFs, file)
		if err != nil {
			return err
		}
		result := r.RenderContext(ctx, tree, root)
		html := root.InnerHTML()

		loc, err := sink.Write(ctx, outputName(file), []byte(html))
		if err != nil {
			return err
		}

		switch {
		case result.Mounted:
			success(w, "%s mounted → %s", file, loc)
		case result.Unmounted:
			success(w, "%s unmounted → %s", file, loc)
		default:
			success(w, "%s %d patches → %s", file, result.Patches.Len(), loc)
		}
		if showDiff && i > 0 {
			info(w, "%s", htmlDiff(prev, html))
		}
		prev = html
	}
	return nil
}

// htmlDiff marks insertions as {+text+} and deletions as [-text-].
func htmlDiff(from, to string) string {
	if from == to {
		return "(no change)"
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			b.WriteString(addColor(fmt.Sprintf("{+%s+}", d.Text)))
		case diffpatch.DiffDelete:
			b.WriteString(removeColor(fmt.Sprintf("[-%s-]", d.Text)))
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
