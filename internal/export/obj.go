// Package export writes generated chunks and meshes to disk formats.
package export

import (
	"bufio"
	"fmt"
	"io"

	"chunkmesh/internal/meshing"
)

// WriteOBJ writes the welded render mesh as Wavefront OBJ. Face winding is
// kept as emitted, so front faces stay clockwise seen from outside.
func WriteOBJ(w io.Writer, mesh *meshing.RenderMesh) error {
	bw := bufio.NewWriter(w)
	indexed := mesh.Indexed()

	fmt.Fprintf(bw, "# chunkmesh: %d vertices, %d triangles\n", len(indexed.Vertices), len(indexed.Indices)/3)
	for _, v := range indexed.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range indexed.Vertices {
		// OBJ puts the texture origin bottom-left.
		fmt.Fprintf(bw, "vt %g %g\n", v.UV[0], 1-v.UV[1])
	}
	for _, v := range indexed.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for i := 0; i+2 < len(indexed.Indices); i += 3 {
		a, b, c := indexed.Indices[i]+1, indexed.Indices[i+1]+1, indexed.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return bw.Flush()
}
