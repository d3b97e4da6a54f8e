package data

import (
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestRandomName(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	all := append(append([]string{}, CommonNames.Male...), CommonNames.Female...)
	seen := map[string]bool{}
	for range 200 {
		name := RandomName(rng)
		assert.True(t, lo.Contains(all, name), name)
		seen[name] = true
	}
	assert.Greater(t, len(seen), 20)
}

func TestRandomNameIsSeeded(t *testing.T) {
	a := RandomName(rand.New(rand.NewSource(11)))
	b := RandomName(rand.New(rand.NewSource(11)))
	assert.Equal(t, a, b)
}
