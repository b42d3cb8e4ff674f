package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestResolver() *Resolver {
	return New("https://cdn.example.com/img", "https://storage.example.com", "/static/placeholder.png")
}

func TestResolve_DirectURLsPassThrough(t *testing.T) {
	r := newTestResolver()

	for _, u := range []string{
		"http://example.com/a.png",
		"https://example.com/a.png",
		"data:image/png;base64,AAAA",
		"blob:https://example.com/uuid",
	} {
		assert.Equal(t, u, r.Resolve(u))
	}
}

func TestResolve_KeyGetsPublicBase(t *testing.T) {
	r := newTestResolver()

	assert.Equal(t, "https://cdn.example.com/img/products/p1.png", r.Resolve("products/p1.png"))
	assert.Equal(t, "https://cdn.example.com/img/products/p1.png", r.Resolve("/products/p1.png"))
}

func TestResolve_EmptyKeyIsPlaceholder(t *testing.T) {
	assert.Equal(t, "/static/placeholder.png", newTestResolver().Resolve(""))
}

func TestCandidates_FallbackChainEndsAtPlaceholder(t *testing.T) {
	r := newTestResolver()

	chain := r.Candidates("products/p1.png")
	assert.Equal(t, []string{
		"https://cdn.example.com/img/products/p1.png",
		"https://storage.example.com/products/p1.png",
		"/static/placeholder.png",
	}, chain)
}

func TestCandidates_DirectURLFallsToPlaceholderOnly(t *testing.T) {
	r := newTestResolver()

	chain := r.Candidates("https://example.com/a.png")
	assert.Equal(t, []string{"https://example.com/a.png", "/static/placeholder.png"}, chain)
}

func TestCandidates_NoDirectBaseSkipsSecondAttempt(t *testing.T) {
	r := New("https://cdn.example.com", "", "/static/placeholder.png")

	chain := r.Candidates("a.png")
	assert.Equal(t, []string{"https://cdn.example.com/a.png", "/static/placeholder.png"}, chain)
}
