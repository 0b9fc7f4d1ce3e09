package scene

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"plane-geometry/internal/geometry"
	"plane-geometry/internal/graphics"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// Scene holds a 3D camera and draws the generated plane over an editor grid.
// Update runs camera logic; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	Wireframe   bool
	cursorDone  bool

	// pending is swapped in on the next Draw so GPU upload runs after the window/GL context exists.
	pending  *graphics.Mesh
	mesh     *graphics.Mesh
	mtl      rl.Material
	mtlReady bool
	shader   rl.Shader
	tint     rl.Color
	lightDir [3]float32
}

// New returns a scene with a perspective camera looking at the origin.
// Camera: position (10,10,10), target (0,0,0), up (0,1,0), fovy 45°. Grid is visible by default.
func New() *Scene {
	s := &Scene{}
	s.Camera.Position = rl.NewVector3(10, 10, 10)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.GridVisible = true
	s.tint = rl.NewColor(128, 128, 128, 255)
	// Plane normals face -Z, so light comes from above and in front.
	s.lightDir = [3]float32{0.4, 0.8, -1}
	return s
}

// SetPlane replaces the drawn geometry. The mesh is uploaded on the next Draw.
func (s *Scene) SetPlane(g *geometry.Geometry, tint color.RGBA) {
	s.pending = graphics.NewMesh(g)
	s.tint = rl.NewColor(tint.R, tint.G, tint.B, tint.A)
}

// SetGridVisible sets whether the editor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update runs once per frame. Uses raylib UpdateCamera with CameraFree so the user can
// move the camera with mouse and keyboard. G toggles the grid, F toggles wireframe.
func (s *Scene) Update() {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFree)
	if rl.IsKeyPressed(rl.KeyG) {
		s.GridVisible = !s.GridVisible
	}
	if rl.IsKeyPressed(rl.KeyF) {
		s.Wireframe = !s.Wireframe
	}
}

// Draw renders the 3D scene. Call after ClearBackground and before 2D overlays.
func (s *Scene) Draw() {
	s.ensureMeshLoaded()
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawEditorGrid()
	}
	if s.mesh != nil {
		s.drawPlane()
	}
	rl.EndMode3D()
}

// Close releases the GPU mesh and material shader.
func (s *Scene) Close() {
	if s.mesh != nil {
		s.mesh.Unload()
		s.mesh = nil
	}
	if rl.IsShaderValid(s.shader) {
		rl.UnloadShader(s.shader)
		s.shader = rl.Shader{}
	}
	s.mtlReady = false
}

// ensureMeshLoaded uploads a pending mesh and creates the lit material on first use.
func (s *Scene) ensureMeshLoaded() {
	if !s.mtlReady {
		s.mtl = rl.LoadMaterialDefault()
		if shader := loadLitShader(); rl.IsShaderValid(shader) {
			s.mtl.Shader = shader
			s.shader = shader
		}
		s.mtlReady = true
	}
	if s.pending == nil {
		return
	}
	if s.mesh != nil {
		s.mesh.Unload()
	}
	s.mesh = s.pending
	s.pending = nil
	s.mesh.Upload()
}

func (s *Scene) drawPlane() {
	if albedo := s.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = s.tint
	}
	pos := s.Camera.Position
	setLitShaderUniforms(s.mtl.Shader, [3]float32{pos.X, pos.Y, pos.Z}, s.lightDir)
	if s.Wireframe {
		rl.EnableWireMode()
		defer rl.DisableWireMode()
	}
	rl.DrawMesh(s.mesh.Mesh, s.mtl, rl.MatrixIdentity())
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// X=red, Y=green, Z=blue
	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
