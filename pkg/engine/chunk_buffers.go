package engine

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"terraingen/pkg/terrain"
)

// ChunkBuffers owns the GPU copy of one chunk's mesh
type ChunkBuffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	model      mgl32.Mat4
}

// uploadChunk copies the chunk mesh into a new VAO/VBO/EBO triple.
// Must be called on the thread that owns the GL context.
func uploadChunk(chunk *terrain.Chunk) *ChunkBuffers {
	mesh := chunk.Mesh()
	b := &ChunkBuffers{
		indexCount: int32(len(mesh.Indices)),
		model:      chunk.Model(),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.GenBuffers(1, &b.ebo)

	gl.BindVertexArray(b.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return b
}

// Draw issues the indexed draw call. The terrain program must be bound.
func (b *ChunkBuffers) Draw(modelLocation int32) {
	gl.UniformMatrix4fv(modelLocation, 1, false, &b.model[0])
	gl.BindVertexArray(b.vao)
	gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Delete releases the GL objects
func (b *ChunkBuffers) Delete() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteBuffers(1, &b.ebo)
	b.vao, b.vbo, b.ebo = 0, 0, 0
}
