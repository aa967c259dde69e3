package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Chunk is one independently meshed piece of the world. Geometry is
// generated once; regeneration replaces whole chunks, so a Chunk is
// always handled by pointer and never copied.
type Chunk struct {
	Coord    Coord
	Position mgl32.Vec3
	Width    int
	Height   int

	mesh *Mesh
}

// NewChunk creates a chunk without geometry.
func NewChunk(coord Coord, position mgl32.Vec3, width, height int) *Chunk {
	return &Chunk{
		Coord:    coord,
		Position: position,
		Width:    width,
		Height:   height,
	}
}

// ChunkOrigin is the world-space origin of the chunk at coord. Each chunk
// spans one unit along x and z.
func ChunkOrigin(coord Coord) mgl32.Vec3 {
	return mgl32.Vec3{float32(coord.X), 0, float32(coord.Y)}
}

// GenerateTerrain builds the chunk's mesh from its heightfield slice.
func (c *Chunk) GenerateTerrain(slice *Heightfield) error {
	if c.mesh != nil {
		return fmt.Errorf("chunk %v: %w", c.Coord, ErrChunkGenerated)
	}
	if err := slice.validate(); err != nil {
		return fmt.Errorf("chunk %v: %w", c.Coord, err)
	}
	if slice.Width != c.Width || slice.Height != c.Height {
		return fmt.Errorf("chunk %v: %w: slice %dx%d, chunk %dx%d",
			c.Coord, ErrDimensionMismatch, slice.Width, slice.Height, c.Width, c.Height)
	}

	mesh, err := BuildMesh(slice)
	if err != nil {
		return fmt.Errorf("chunk %v: %w", c.Coord, err)
	}
	c.mesh = mesh
	return nil
}

// Mesh returns the chunk geometry, or nil before GenerateTerrain.
func (c *Chunk) Mesh() *Mesh {
	return c.mesh
}

// Generated reports whether the chunk has geometry.
func (c *Chunk) Generated() bool {
	return c.mesh != nil
}

// Model returns the model matrix used to place the chunk: translate to the
// origin, then turn the xy grid 90 degrees about x into the xz plane.
func (c *Chunk) Model() mgl32.Mat4 {
	return mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(90)))
}
