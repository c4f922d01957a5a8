package shader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Vertex, "vertex"},
		{TessControl, "tess control"},
		{TessEval, "tess evaluation"},
		{Fragment, "fragment"},
		{Kind(0x1234), "stage 0x1234"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%#x).String() = %q, want %q", uint32(tt.kind), got, tt.want)
		}
	}
}

func TestWithOverridesEmptyDir(t *testing.T) {
	stages := []Stage{{Kind: Vertex, Name: "water.vert", Source: "embedded"}}

	out, err := WithOverrides(stages, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].Source != "embedded" {
		t.Errorf("expected embedded source, got %q", out[0].Source)
	}
}

func TestWithOverridesReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "water.frag"), []byte("override"), 0644); err != nil {
		t.Fatalf("failed to write override: %v", err)
	}

	stages := []Stage{
		{Kind: Vertex, Name: "water.vert", Source: "embedded vert"},
		{Kind: Fragment, Name: "water.frag", Source: "embedded frag"},
	}

	out, err := WithOverrides(stages, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].Source != "embedded vert" {
		t.Errorf("missing override should keep embedded source, got %q", out[0].Source)
	}
	if out[1].Source != "override" {
		t.Errorf("expected override source, got %q", out[1].Source)
	}
	if stages[1].Source != "embedded frag" {
		t.Error("input stages must not be modified")
	}
}

func TestWithOverridesUnreadable(t *testing.T) {
	dir := t.TempDir()
	// A directory where a file is expected cannot be read as a shader.
	if err := os.Mkdir(filepath.Join(dir, "water.vert"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	_, err := WithOverrides([]Stage{{Kind: Vertex, Name: "water.vert"}}, dir)
	if err == nil {
		t.Error("expected error reading a directory as shader source")
	}
}
