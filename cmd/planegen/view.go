package main

import (
	"flag"
	"io"

	"plane-geometry/internal/commands"
	"plane-geometry/internal/debug"
	"plane-geometry/internal/engineconfig"
	"plane-geometry/internal/graphics"
	"plane-geometry/internal/scene"
)

func registerView(reg *commands.Registry) {
	prefs, _ := engineconfig.Load(engineconfig.EngineConfigPath)
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var pf planeFlags
	pf.register(fs, prefs.PlaneDef)
	wire := fs.Bool("wireframe", prefs.Wireframe, "start in wireframe mode")
	reg.Register("view", "open a window showing the plane (G grid, F wireframe)", fs, func() error {
		prefs.Wireframe = *wire
		return view(&pf, prefs)
	})
}

func view(pf *planeFlags, prefs engineconfig.EnginePrefs) error {
	def, cfg, err := pf.load(false)
	if err != nil {
		return err
	}
	tint, err := def.RGBA()
	if err != nil {
		return err
	}
	g, err := pf.builder().Build(cfg)
	if err != nil {
		return err
	}

	scn := scene.New()
	scn.SetGridVisible(prefs.GridVisible)
	scn.Wireframe = prefs.Wireframe
	scn.SetPlane(g, tint)

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowStats = prefs.ShowStats
	wide := g.Indices.Wide()
	dbg.SetStats(g.VertexCount(), g.TriangleCount(), wide, wide)

	draw := func() {
		scn.Draw()
		dbg.Draw()
	}
	graphics.Run("planegen", scn.Update, draw, scn.Close)

	prefs.GridVisible = scn.GridVisible
	prefs.Wireframe = scn.Wireframe
	return engineconfig.Save(engineconfig.EngineConfigPath, prefs)
}
