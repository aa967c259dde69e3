package terrain

import "fmt"

// Mesh is GPU-ready chunk geometry: xyz triples and triangle indices.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of xyz vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles described by Indices.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// BuildMesh turns a width x height slice into a (width+1) x (height+1)
// vertex grid and two triangles per cell.
//
// Vertex (j, i) sits at (j/width, i/height, h) where h is slice(i, j) for
// i < height and j < width. The trailing row and column have no sample and
// are pinned to 0.
func BuildMesh(slice *Heightfield) (*Mesh, error) {
	if err := slice.validate(); err != nil {
		return nil, err
	}
	if !slice.Finite() {
		return nil, ErrNonFinite
	}
	vertexLimit := uint64(slice.Width+1) * uint64(slice.Height+1)
	if vertexLimit > 1<<32 {
		return nil, fmt.Errorf("%w: %d vertices do not fit 32-bit indices", ErrWorldTooLarge, vertexLimit)
	}

	return &Mesh{
		Vertices: buildVertices(slice),
		Indices:  buildIndices(slice.Width, slice.Height),
	}, nil
}

func buildVertices(slice *Heightfield) []float32 {
	width, height := slice.Width, slice.Height
	vertices := make([]float32, 0, (width+1)*(height+1)*3)

	for i := 0; i <= height; i++ {
		for j := 0; j <= width; j++ {
			var z float32
			if i < height && j < width {
				z = slice.Data[i*width+j]
			}
			vertices = append(vertices, float32(j)/float32(width), float32(i)/float32(height), z)
		}
	}

	return vertices
}

// buildIndices relies on the row-major vertex order of buildVertices.
func buildIndices(width, height int) []uint32 {
	indices := make([]uint32, 0, width*height*6)
	stride := uint32(width + 1)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			base := uint32(y)*stride + uint32(x)
			indices = append(indices,
				base, base+stride, base+1,
				base+1, base+stride, base+stride+1,
			)
		}
	}

	return indices
}
