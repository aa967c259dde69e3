package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"terraingen/pkg/config"
	"terraingen/pkg/terrain"
)

// waterExtent is the half-size of the water quad in world units
const waterExtent = 50.0

// TerrainRenderer draws the live chunk set plus a water plane
type TerrainRenderer struct {
	width  int
	height int
	fov    float32

	terrainProgram uint32
	waterProgram   uint32

	// Shader uniforms
	terrainModel      int32
	terrainView       int32
	terrainProjection int32
	waterModel        int32
	waterView         int32
	waterProjection   int32

	waterVAO   uint32
	waterVBO   uint32
	waterLevel float32

	chunks     []*ChunkBuffers
	generation uint64
	numChunks  int
}

// NewTerrainRenderer compiles the shaders and creates the water quad.
// The GL context must be current.
func NewTerrainRenderer(cfg config.GraphicsConfig, waterLevel float32) (*TerrainRenderer, error) {
	r := &TerrainRenderer{
		width:      cfg.Width,
		height:     cfg.Height,
		fov:        cfg.FOV,
		waterLevel: waterLevel,
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.Disable(gl.CULL_FACE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	var err error
	if r.terrainProgram, err = createShaderProgram(terrainVertexShaderSource, terrainFragmentShaderSource); err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	if r.waterProgram, err = createShaderProgram(waterVertexShaderSource, waterFragmentShaderSource); err != nil {
		gl.DeleteProgram(r.terrainProgram)
		return nil, fmt.Errorf("water shader: %w", err)
	}

	r.terrainModel = gl.GetUniformLocation(r.terrainProgram, gl.Str("model\x00"))
	r.terrainView = gl.GetUniformLocation(r.terrainProgram, gl.Str("view\x00"))
	r.terrainProjection = gl.GetUniformLocation(r.terrainProgram, gl.Str("projection\x00"))
	r.waterModel = gl.GetUniformLocation(r.waterProgram, gl.Str("model\x00"))
	r.waterView = gl.GetUniformLocation(r.waterProgram, gl.Str("view\x00"))
	r.waterProjection = gl.GetUniformLocation(r.waterProgram, gl.Str("projection\x00"))

	r.setupWaterQuad()
	return r, nil
}

func (r *TerrainRenderer) setupWaterQuad() {
	vertices := []float32{
		-0.5, 0.0, -0.5,
		0.5, 0.0, -0.5,
		0.5, 0.0, 0.5,
		-0.5, 0.0, 0.5,
	}

	gl.GenVertexArrays(1, &r.waterVAO)
	gl.GenBuffers(1, &r.waterVBO)
	gl.BindVertexArray(r.waterVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.waterVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

// Sync uploads set if it is newer than what is on the GPU. The old
// buffers are released only after the new set is fully uploaded.
func (r *TerrainRenderer) Sync(set *terrain.ChunkSet) {
	if set == nil || set.Generation == r.generation {
		return
	}

	uploaded := make([]*ChunkBuffers, 0, len(set.Chunks))
	for _, chunk := range set.Chunks {
		uploaded = append(uploaded, uploadChunk(chunk))
	}

	old := r.chunks
	r.chunks = uploaded
	r.generation = set.Generation
	r.numChunks = set.Params.NumChunks
	for _, b := range old {
		b.Delete()
	}
}

// Generation returns the generation currently on the GPU
func (r *TerrainRenderer) Generation() uint64 {
	return r.generation
}

// Render draws one frame
func (r *TerrainRenderer) Render() {
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.ClearColor(0.53, 0.81, 0.98, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := viewMatrix(r.numChunks)
	projection := projectionMatrix(r.fov, r.width, r.height)

	gl.UseProgram(r.terrainProgram)
	gl.UniformMatrix4fv(r.terrainView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.terrainProjection, 1, false, &projection[0])
	for _, b := range r.chunks {
		b.Draw(r.terrainModel)
	}

	// Water goes last so it blends over the terrain
	water := waterModel(r.waterLevel)
	gl.UseProgram(r.waterProgram)
	gl.UniformMatrix4fv(r.waterView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.waterProjection, 1, false, &projection[0])
	gl.UniformMatrix4fv(r.waterModel, 1, false, &water[0])
	gl.BindVertexArray(r.waterVAO)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)
}

// UpdateResolution updates the viewport size
func (r *TerrainRenderer) UpdateResolution(width, height int) {
	r.width = width
	r.height = height
}

// Close releases resources
func (r *TerrainRenderer) Close() {
	for _, b := range r.chunks {
		b.Delete()
	}
	r.chunks = nil
	gl.DeleteVertexArrays(1, &r.waterVAO)
	gl.DeleteBuffers(1, &r.waterVBO)
	gl.DeleteProgram(r.terrainProgram)
	gl.DeleteProgram(r.waterProgram)
}

// viewMatrix looks at the middle of the chunk grid from just outside its
// corner. Chunk models turn height towards -y, so -y is up on screen.
func viewMatrix(numChunks int) mgl32.Mat4 {
	if numChunks < 1 {
		numChunks = 1
	}
	side := float32(numChunks)
	eye := mgl32.Vec3{-2, -1 - side*0.25, -2}
	center := mgl32.Vec3{side / 2, 0, side / 2}
	return mgl32.LookAtV(eye, center, mgl32.Vec3{0, -1, 0})
}

func projectionMatrix(fov float32, width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(fov), aspect, 0.1, 100.0)
}

func waterModel(level float32) mgl32.Mat4 {
	return mgl32.Translate3D(0, level, 0).Mul4(mgl32.Scale3D(2*waterExtent, 2*waterExtent, 2*waterExtent))
}

func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)

	// Shaders are no longer needed once linked
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %v", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader compilation failed: %v", log)
	}

	return shader, nil
}
