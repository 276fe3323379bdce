package media

// Resolver resolves a relative illustration reference from an entry document
// to the URL path it is served under.
type Resolver interface {
	// Asset resolves a source reference to its full URL path, including the
	// configured prefix and any fingerprinted filename.
	//
	// Example:
	//   resolver.Asset("plant.png") → "/media/plant.a1b2c3.png"
	Asset(source string) string
}

// manifestResolver combines manifest lookup with path prefixing.
type manifestResolver struct {
	manifest *Manifest
	prefix   string
}

// NewResolver creates a Resolver from a Manifest with a path prefix, usually
// "/media/".
func NewResolver(m *Manifest, prefix string) Resolver {
	return &manifestResolver{manifest: m, prefix: prefix}
}

func (r *manifestResolver) Asset(source string) string {
	return r.prefix + r.manifest.Resolve(source)
}

// passthrough prepends the prefix without manifest lookup. Used when no
// manifest is configured.
type passthrough struct {
	prefix string
}

// NewPassthroughResolver creates a resolver that returns references
// unchanged apart from the prefix.
func NewPassthroughResolver(prefix string) Resolver {
	return &passthrough{prefix: prefix}
}

func (p *passthrough) Asset(source string) string {
	return p.prefix + source
}
