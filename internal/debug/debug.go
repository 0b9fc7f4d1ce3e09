package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh FPS text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws text overlays in the top-right corner: FPS and mesh stats.
type Debug struct {
	ShowFPS     bool
	ShowStats   bool
	frameCount  uint32
	lastFpsText string
	statsLines  []string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetStats records the mesh numbers shown when ShowStats is true.
func (d *Debug) SetStats(vertices, triangles int, wideIndices, unindexed bool) {
	d.statsLines = StatsLines(vertices, triangles, wideIndices, unindexed)
}

// StatsLines formats mesh stats for the overlay.
func StatsLines(vertices, triangles int, wideIndices, unindexed bool) []string {
	width := "16-bit"
	if wideIndices {
		width = "32-bit"
	}
	idx := "Indices: " + width
	if unindexed {
		idx += " (drawn unindexed)"
	}
	return []string{
		fmt.Sprintf("Vertices: %d", vertices),
		fmt.Sprintf("Triangles: %d", triangles),
		idx,
	}
}

// Draw renders enabled overlays. Call after the scene in the draw loop.
func (d *Debug) Draw() {
	d.frameCount++
	if d.ShowFPS && (d.lastFpsText == "" || d.frameCount%updateInterval == 0) {
		d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	drawLine := func(text string, c rl.Color) {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, c)
		y += lineHeight
	}

	if d.ShowFPS && d.lastFpsText != "" {
		drawLine(d.lastFpsText, rl.Green)
	}
	if d.ShowStats {
		for _, line := range d.statsLines {
			drawLine(line, rl.RayWhite)
		}
	}
}
