package loaders

import (
	"strings"
	"testing"
)

func TestParseObjTriangle(t *testing.T) {
	const src = `
# a single triangle
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 0.0 1.0 0.0
vn 0.0 0.0 1.0
f 1//1 2//1 3//1
`
	data, err := parseObj(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parseObj() error = %v", err)
	}
	if len(data.Positions) != 3 {
		t.Fatalf("len(Positions) = %d, want 3", len(data.Positions))
	}
	if len(data.Indices) != 3 {
		t.Fatalf("len(Indices) = %d, want 3", len(data.Indices))
	}
	if data.Indices[0] != 0 || data.Indices[1] != 1 || data.Indices[2] != 2 {
		t.Errorf("Indices = %v, want [0 1 2] (0-based)", data.Indices)
	}
}

func TestParseObjRejectsQuads(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	if _, err := parseObj(strings.NewReader(src)); err == nil {
		t.Error("expected an error parsing a non-triangular face")
	}
}
