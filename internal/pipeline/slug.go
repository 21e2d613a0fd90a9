package pipeline

// SlugRegistry tracks slugs assigned during one enrichment run. Base
// slugs map to the id that first claimed them; renamed variants are
// never registered, so repeated collisions on the same base each get
// their own id suffix.
type SlugRegistry struct {
	seen map[string]string
}

func NewSlugRegistry() *SlugRegistry {
	return &SlugRegistry{seen: map[string]string{}}
}

// Claim registers slug for id and returns the slug to use. On a
// collision the returned slug is "{slug}-{id}" and renamed is true.
func (r *SlugRegistry) Claim(slug, id string) (final string, renamed bool) {
	if _, exists := r.seen[slug]; exists {
		return slug + "-" + id, true
	}
	r.seen[slug] = id
	return slug, false
}
