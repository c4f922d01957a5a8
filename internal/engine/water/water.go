// Package water animates the height/normal texture sequence that drives the
// tessellated water surface.
package water

import "fmt"

// Texture units used by the water program.
const (
	UnitHeight1 = iota
	UnitHeight2
	UnitNormal1
	UnitNormal2
	UnitWater
	UnitWavesHeight
	UnitWavesNormal

	// UnitCount is the number of sampler units the program reads.
	UnitCount
)

// Binder attaches a texture to a sampling unit.
type Binder interface {
	BindTexture(unit int, tex uint32)
}

// Sequence is an ordered ring of paired height and normal textures.
type Sequence struct {
	Heights []uint32
	Normals []uint32
}

// Len returns the number of frames in the sequence.
func (s Sequence) Len() int {
	return len(s.Heights)
}

// Validate checks that the sequence can be animated.
func (s Sequence) Validate() error {
	if len(s.Heights) != len(s.Normals) {
		return fmt.Errorf("height/normal count mismatch: %d vs %d", len(s.Heights), len(s.Normals))
	}
	if len(s.Heights) < 2 {
		return fmt.Errorf("sequence needs at least 2 frames, got %d", len(s.Heights))
	}
	return nil
}

// Config holds animation rates.
type Config struct {
	BlendRate float32 // blend units per second
	WaveSpeed float32 // wave UV offset units per second
	WaveWrap  float32 // wave offset resets to 0 at this bound
}

// Animator blends between consecutive frames of a Sequence.
//
// The active pair is always (index, index+1). The index wraps to 0 when it
// reaches Len()-2, so a cycle covers Len()-2 pairs and index+1 stays below
// Len()-1.
type Animator struct {
	seq   Sequence
	cfg   Config
	index int
	blend float32
	wave  float32
}

// NewAnimator creates an animator positioned at frame 0 with zero blend.
func NewAnimator(seq Sequence, cfg Config) (*Animator, error) {
	if err := seq.Validate(); err != nil {
		return nil, err
	}
	return &Animator{seq: seq, cfg: cfg}, nil
}

// Advance moves the animation forward by dt seconds. When the blend factor
// reaches 1 it snaps to 0, the pair advances one frame, and b (if non-nil)
// receives the new pair. Reports whether the pair changed.
func (a *Animator) Advance(dt float32, b Binder) bool {
	a.wave += float32(a.cfg.WaveSpeed * dt)
	if a.wave >= a.cfg.WaveWrap {
		a.wave = 0
	}

	a.blend += float32(a.cfg.BlendRate * dt)
	if a.blend < 1 {
		return false
	}

	a.blend = 0
	a.index++
	if a.index >= a.seq.Len()-2 {
		a.index = 0
	}
	if b != nil {
		a.Bind(b)
	}
	return true
}

// Bind attaches the active pair to units 0-3.
func (a *Animator) Bind(b Binder) {
	b.BindTexture(UnitHeight1, a.seq.Heights[a.index])
	b.BindTexture(UnitHeight2, a.seq.Heights[a.index+1])
	b.BindTexture(UnitNormal1, a.seq.Normals[a.index])
	b.BindTexture(UnitNormal2, a.seq.Normals[a.index+1])
}

// Index returns the first frame of the active pair.
func (a *Animator) Index() int {
	return a.index
}

// Blend returns the interpolation factor between the active pair, in [0, 1).
func (a *Animator) Blend() float32 {
	return a.blend
}

// WaveOffset returns the scrolling UV offset for the static wave layer.
func (a *Animator) WaveOffset() float32 {
	return a.wave
}
