package main

import (
	"flag"
	"fmt"
	"io"

	"plane-geometry/internal/commands"
)

func registerStats(reg *commands.Registry, out io.Writer) {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(out)
	var pf planeFlags
	pf.register(fs, "")
	reg.Register("stats", "build a plane and print its counts and input warnings", fs, func() error {
		return stats(&pf, out)
	})
}

func stats(pf *planeFlags, out io.Writer) error {
	_, cfg, err := pf.load(true)
	if err != nil {
		return err
	}
	b := pf.builder()
	params, diags := b.Sanitize(cfg)
	g, err := b.Build(cfg)
	if err != nil {
		return err
	}

	width := "16-bit"
	if g.Indices.Wide() {
		width = "32-bit"
	}
	fmt.Fprintf(out, "segments:  %d x %d\n", params.XSegments, params.ZSegments)
	fmt.Fprintf(out, "size:      %g x %g\n", params.XSize, params.ZSize)
	fmt.Fprintf(out, "vertices:  %d\n", g.VertexCount())
	fmt.Fprintf(out, "triangles: %d\n", g.TriangleCount())
	fmt.Fprintf(out, "indices:   %d (%s)\n", g.Indices.Len(), width)
	for _, d := range diags {
		fmt.Fprintf(out, "warning: %s\n", d)
	}
	return nil
}
