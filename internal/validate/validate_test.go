package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStruct(t *testing.T) {
	type sample struct {
		Color string  `validate:"omitempty,hexcolor"`
		FPS   int     `validate:"gt=0"`
		Zoom  float64 `validate:"gt=0"`
	}

	assert.NoError(t, Struct(sample{Color: "#ff4444", FPS: 30, Zoom: 0.5}))
	assert.NoError(t, Struct(sample{FPS: 30, Zoom: 0.5}))
	assert.Error(t, Struct(sample{Color: "red", FPS: 30, Zoom: 0.5}))
	assert.Error(t, Struct(sample{Color: "#fff", FPS: 0, Zoom: 0.5}))
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("truncate", "oneof=extend truncate strict"))
	assert.Error(t, Var("wrap", "oneof=extend truncate strict"))
}
