package input

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteer(t *testing.T) {
	assert.Equal(t, 0.0, Intents{}.Steer())
	assert.Equal(t, -1.0, Intents{Left: true}.Steer())
	assert.Equal(t, 1.0, Intents{Right: true}.Steer())
	assert.Equal(t, -1.0, Intents{Left: true, Right: true}.Steer())
}

// the simulation packages import this one, so it must stay free of any
// windowing dependency
func TestNoWindowingImports(t *testing.T) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, ".", nil, parser.ImportsOnly)
	require.NoError(t, err)
	for _, pkg := range pkgs {
		for name, f := range pkg.Files {
			for _, imp := range f.Imports {
				assert.NotContains(t, imp.Path.Value, "ebiten", name)
			}
		}
	}
}
