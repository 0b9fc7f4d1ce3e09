package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 720
	targetFPS    = 60
)

// Run opens the window and runs the main loop. Each frame it calls update
// (input, camera), then clears the screen and calls draw.
// The loop ends when the window is closed or ESC is pressed; shutdown, if
// non-nil, runs while the GL context still exists.
func Run(title string, update, draw, shutdown func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(windowWidth, windowHeight, title)
	defer rl.CloseWindow()
	if shutdown != nil {
		defer shutdown()
	}

	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
