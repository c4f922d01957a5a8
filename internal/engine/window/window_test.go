package window

import (
	"testing"

	"github.com/Faultbox/gl-waves/internal/engine/input"
)

func TestNewUnknownBackend(t *testing.T) {
	w, err := New(Config{Backend: "wayland-direct", Width: 64, Height: 64})
	if err == nil {
		w.Close()
		t.Fatal("expected error for unknown backend")
	}
}

func TestKeyTablesComplete(t *testing.T) {
	sdlSeen := make(map[int]input.Key)
	glfwSeen := make(map[int]input.Key)

	for k := input.Key(0); k < input.KeyCount; k++ {
		sc := int(sdlKeys[k])
		if sc == 0 {
			t.Errorf("key %s has no SDL scancode", k)
		}
		if other, dup := sdlSeen[sc]; dup {
			t.Errorf("keys %s and %s share SDL scancode %d", other, k, sc)
		}
		sdlSeen[sc] = k

		gk := int(glfwKeys[k])
		if gk == 0 {
			t.Errorf("key %s has no GLFW key", k)
		}
		if other, dup := glfwSeen[gk]; dup {
			t.Errorf("keys %s and %s share GLFW key %d", other, k, gk)
		}
		glfwSeen[gk] = k
	}
}
