package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"tricktaker/internal/rng"
)

func TestGetRandomName(t *testing.T) {
	defer func(orig rng.Generator) { random = orig }(random)

	random = rng.NewSeeded(0)
	first, second := GetRandomName(), GetRandomName()

	random = rng.NewSeeded(0)
	assert.Equal(t, first, GetRandomName())
	assert.Equal(t, second, GetRandomName())

	assert.Regexp(t, regexp.MustCompile(`^[A-Z][a-z]+ [A-Z][a-z]+$`), first)
}

func TestFillNames(t *testing.T) {
	a := assert.New(t)

	names := FillNames([]string{"Alice"}, 4)
	a.Len(names, 4)
	a.Equal("Alice", names[0])

	seen := make(map[string]bool)
	for _, name := range names {
		a.False(seen[name], "duplicate name %s", name)
		seen[name] = true
	}

	a.Equal([]string{"Alice", "Bob"}, FillNames([]string{"Alice", "Bob"}, 2))
}

func TestFillNames_blanks(t *testing.T) {
	a := assert.New(t)

	names := FillNames([]string{"", "Alice", ""}, 3)
	a.Len(names, 3)
	a.Equal("Alice", names[1])
	a.NotEmpty(names[0])
	a.NotEmpty(names[2])
	a.NotEqual("Alice", names[0])
	a.NotEqual("Alice", names[2])
	a.NotEqual(names[0], names[2])
}
