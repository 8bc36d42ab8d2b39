// Package loaders provides the external asset collaborators the core
// rendering engine never touches directly: a Wavefront OBJ reader and an
// 8-bit raster image decoder, both yielding flat arrays the engine consumes
// through pkg/geometry and pkg/material.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/CampbellOwen/RayTracing/pkg/core"
)

// MeshData is the single-index, flat-array form of a parsed OBJ mesh.
type MeshData struct {
	Positions []core.Vec3
	Normals   []core.Vec3
	Texcoords []core.Vec2
	Indices   []int
}

// LoadObj reads a Wavefront OBJ file from path and returns its single-index
// triangle data. Non-triangular faces are rejected: this loader has no
// fan-triangulation step, matching a minimal renderer's needs rather than
// a general-purpose importer.
func LoadObj(path string) (*MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open %s: %w", path, err)
	}
	defer f.Close()

	data, err := parseObj(f)
	if err != nil {
		return nil, fmt.Errorf("loaders: parse %s: %w", path, err)
	}
	return data, nil
}

func parseObj(r io.Reader) (*MeshData, error) {
	var positions []core.Vec3
	var normals []core.Vec3
	var texcoords []core.Vec2
	var indices []int

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, v)
		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			normals = append(normals, v)
		case "vt":
			v, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			texcoords = append(texcoords, v)
		case "f":
			faceIndices, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			indices = append(indices, faceIndices...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &MeshData{Positions: positions, Normals: normals, Texcoords: texcoords, Indices: indices}, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.Vec3{X: x, Y: y, Z: z}, nil
}

func parseVec2(fields []string) (core.Vec2, error) {
	if len(fields) < 2 {
		return core.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return core.Vec2{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return core.Vec2{}, err
	}
	return core.Vec2{X: x, Y: y}, nil
}

// parseFace parses "f v/vt/vn v/vt/vn v/vt/vn", rejecting anything but a
// triangle, and returns 0-based position indices (vt/vn indices are
// ignored; this minimal loader assumes position/normal/uv arrays share the same index
// when all three are present, which is how single-index OBJ export tools
// emit them).
func parseFace(fields []string) ([]int, error) {
	if len(fields) != 3 {
		return nil, fmt.Errorf("non-triangular face with %d vertices", len(fields))
	}
	indices := make([]int, 3)
	for i, f := range fields {
		parts := strings.Split(f, "/")
		idx, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, err
		}
		indices[i] = idx - 1 // OBJ indices are 1-based
	}
	return indices, nil
}
