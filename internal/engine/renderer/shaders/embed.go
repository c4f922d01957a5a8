// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// File names of the water program stages. A shader override directory uses
// the same names.
const (
	WaterVertexFile      = "water.vert"
	WaterTessControlFile = "water_tess_control.glsl"
	WaterTessEvalFile    = "water_tess_eval.glsl"
	WaterFragmentFile    = "water.frag"
)

// WaterVertexShader places each patch corner on the instanced grid.
//
//go:embed water.vert
var WaterVertexShader string

// WaterTessControlShader sets the tessellation level for each patch.
//
//go:embed water_tess_control.glsl
var WaterTessControlShader string

// WaterTessEvalShader displaces the tessellated surface by the blended
// height maps.
//
//go:embed water_tess_eval.glsl
var WaterTessEvalShader string

// WaterFragmentShader lights the surface with the blended normal maps.
//
//go:embed water.frag
var WaterFragmentShader string
