package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePatternRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"no leading slash", "animals"},
		{"empty string", ""},
		{"unnamed param", "/animals/:"},
		{"unnamed rest", "/files/{*}"},
		{"rest not last", "/files/{*path}/extra"},
		{"empty segment", "/animals//detail"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compilePattern(tc.raw)
			require.Error(t, err)
		})
	}
}

func TestMatchLiteralAndParams(t *testing.T) {
	p, err := compilePattern("/animals/:id")
	require.NoError(t, err)

	m, ok := p.match("/animals/42")
	require.True(t, ok)
	assert.Equal(t, "42", m.Params["id"])
	assert.Equal(t, "/animals/42", m.Path)

	_, ok = p.match("/animals")
	assert.False(t, ok)

	_, ok = p.match("/animals/42/photos")
	assert.False(t, ok)

	_, ok = p.match("/users/42")
	assert.False(t, ok)
}

func TestMatchRoot(t *testing.T) {
	p, err := compilePattern("/")
	require.NoError(t, err)

	_, ok := p.match("/")
	assert.True(t, ok)

	_, ok = p.match("/animals")
	assert.False(t, ok)
}

func TestMatchTrailingSlash(t *testing.T) {
	p, err := compilePattern("/animals")
	require.NoError(t, err)

	// Trailing slash yapıyı değiştirmez, ama ham path korunur.
	m, ok := p.match("/animals/")
	require.True(t, ok)
	assert.Equal(t, "/animals/", m.Path)

	m, ok = p.match("/animals")
	require.True(t, ok)
	assert.Equal(t, "/animals", m.Path)
}

func TestMatchRestParam(t *testing.T) {
	p, err := compilePattern("/client/{*path}")
	require.NoError(t, err)

	m, ok := p.match("/client/css/app.css")
	require.True(t, ok)
	assert.Equal(t, []string{"css", "app.css"}, m.Rest["path"])

	// Rest sıfır segment de yakalar.
	m, ok = p.match("/client")
	require.True(t, ok)
	assert.Empty(t, m.Rest["path"])

	m, ok = p.match("/client/")
	require.True(t, ok)
	assert.Empty(t, m.Rest["path"])

	_, ok = p.match("/other/css/app.css")
	assert.False(t, ok)
}

func TestMatchRestWithFixedPrefixAndParam(t *testing.T) {
	p, err := compilePattern("/servers/:id/files/{*path}")
	require.NoError(t, err)

	m, ok := p.match("/servers/7/files/a/b/c")
	require.True(t, ok)
	assert.Equal(t, "7", m.Params["id"])
	assert.Equal(t, []string{"a", "b", "c"}, m.Rest["path"])

	// Sabit kısım eksikse eşleşmez.
	_, ok = p.match("/servers/7")
	assert.False(t, ok)
}
