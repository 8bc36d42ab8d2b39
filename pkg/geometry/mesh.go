package geometry

import "github.com/CampbellOwen/RayTracing/pkg/core"

// Mesh is a shared vertex/normal/uv pool plus a shared material handle.
// Triangles hold only indices into this pool; the mesh outlives every
// triangle referencing it because Go's garbage collector keeps a pointed-to
// value alive as long as any pointer to it exists.
type Mesh struct {
	Vertices []core.Vec3
	Normals  []core.Vec3
	UVs      []core.Vec2
	Material core.Material
}

// NewMesh builds a Mesh from flat, single-indexed arrays as produced by
// pkg/loaders.LoadObj, and the list of Triangles referencing it.
func NewMesh(vertices, normals []core.Vec3, uvs []core.Vec2, indices []int, material core.Material) (*Mesh, []*Triangle) {
	mesh := &Mesh{Vertices: vertices, Normals: normals, UVs: uvs, Material: material}
	triangles := make([]*Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		triangles = append(triangles, &Triangle{
			I0: indices[i], I1: indices[i+1], I2: indices[i+2], Mesh: mesh,
		})
	}
	return mesh, triangles
}
