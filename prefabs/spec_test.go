package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.Color
		wantErr bool
	}{
		{in: "#ff0000", want: color.NRGBA{R: 0xff, A: 0xff}},
		{in: "#00ff0080", want: color.NRGBA{G: 0xff, A: 0x80}},
		{in: "ff8800", want: color.NRGBA{R: 0xff, G: 0x88, A: 0xff}},
		{in: "Crimson", want: color.RGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0xff}},
		{in: "#fff", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoadEmbeddedPrefabs(t *testing.T) {
	for _, name := range []string{"ball.yaml", "pivot.yaml", "camera.yaml", "launcher.yaml", "block.yaml"} {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name)
			require.NoError(t, err)
			assert.NotEmpty(t, spec.Name)
			assert.NotEmpty(t, spec.Components)
		})
	}
}

func TestDecodeLauncherSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("launcher.yaml")
	require.NoError(t, err)

	l, err := DecodeComponentSpec[BallLauncherComponentSpec](spec.Components["ball_launcher"])
	require.NoError(t, err)
	assert.Equal(t, "ball.yaml", l.BallPrefab)
	assert.Equal(t, "pivot", l.PivotName)
	require.NotNil(t, l.DetachDelay)
	assert.Equal(t, 0.5, *l.DetachDelay)
}

func TestDecodeShapeColors(t *testing.T) {
	spec, err := LoadEntityBuildSpec("block.yaml")
	require.NoError(t, err)

	shape, err := DecodeComponentSpec[ShapeComponentSpec](spec.Components["shape"])
	require.NoError(t, err)
	assert.NotNil(t, shape.Fill.Color)
	assert.NotNil(t, shape.Outline.Color)
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ball.yaml"), []byte("name: disk\ncomponents: {}\n"), 0o644))

	spec, err := LoadEntityBuildSpec("prefabs/ball.yaml")
	require.NoError(t, err)
	assert.Equal(t, "disk", spec.Name)

	spec, err = LoadEntityBuildSpec("pivot.yaml")
	require.NoError(t, err)
	assert.Equal(t, "pivot", spec.Name)
}

func TestLoadMissing(t *testing.T) {
	_, err := LoadEntityBuildSpec("nope.yaml")
	assert.Error(t, err)
}
