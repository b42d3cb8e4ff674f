// Package images resolves stored image keys into displayable URLs with a
// graceful fallback chain.
package images

import "strings"

// Resolver turns storage keys into public URLs. Direct URLs pass through
// untouched; bare keys get the public base prepended. When the public URL
// fails to load the client walks the remaining candidates, ending at the
// placeholder, so a missing image degrades to a neutral graphic instead of
// a broken page.
type Resolver struct {
	publicBase  string
	directBase  string
	placeholder string
}

// New creates a resolver. publicBase is the CDN-style URL prefix for storage
// keys, directBase the raw storage host used as the second attempt, and
// placeholder the final fallback image.
func New(publicBase, directBase, placeholder string) *Resolver {
	return &Resolver{
		publicBase:  strings.TrimRight(publicBase, "/"),
		directBase:  strings.TrimRight(directBase, "/"),
		placeholder: placeholder,
	}
}

// IsDirectURL reports whether the value is already displayable as-is.
func IsDirectURL(v string) bool {
	return strings.HasPrefix(v, "http://") ||
		strings.HasPrefix(v, "https://") ||
		strings.HasPrefix(v, "data:") ||
		strings.HasPrefix(v, "blob:")
}

// Resolve returns the primary display URL for a key. Empty keys resolve to
// the placeholder immediately.
func (r *Resolver) Resolve(key string) string {
	if key == "" {
		return r.placeholder
	}
	if IsDirectURL(key) {
		return key
	}
	return r.publicBase + "/" + strings.TrimLeft(key, "/")
}

// Candidates returns the ordered fallback chain for a key: public URL,
// direct storage lookup, placeholder. Direct URLs fall straight back to the
// placeholder since there is no alternative rendition of them.
func (r *Resolver) Candidates(key string) []string {
	if key == "" {
		return []string{r.placeholder}
	}
	if IsDirectURL(key) {
		return []string{key, r.placeholder}
	}

	trimmed := strings.TrimLeft(key, "/")
	chain := []string{r.publicBase + "/" + trimmed}
	if r.directBase != "" && r.directBase != r.publicBase {
		chain = append(chain, r.directBase+"/"+trimmed)
	}
	return append(chain, r.placeholder)
}
