package assets

import (
	"strings"
)

// ExcludeMode selects how exclude patterns are matched against a path.
type ExcludeMode string

const (
	// ExcludeSubstring vetoes a path when it contains an exclude pattern.
	// This mirrors the deployed site and is the default.
	ExcludeSubstring ExcludeMode = "substring"

	// ExcludeGlob matches exclude patterns with the same glob grammar as
	// include patterns.
	ExcludeGlob ExcludeMode = "glob"
)

// assetsPrefix is removed from a path before it is appended to the CDN origin.
const assetsPrefix = "assets/"

// Routing is the CDN routing configuration.
type Routing struct {
	BaseURL     string
	Include     []string
	Exclude     []string
	ExcludeMode ExcludeMode
}

// Decision describes how a single path was routed.
type Decision struct {
	Input          string
	Normalized     string
	MatchesInclude bool
	MatchesExclude bool
	UseCDN         bool
	Base           string // deployment base, empty when the CDN was used
	URL            string
}

// Resolver maps logical asset paths to fetchable URLs.
type Resolver struct {
	routing Routing
	include []*Pattern
	exclude []*Pattern
	base    BaseProvider
}

// NewResolver creates a resolver. A nil base provider means the site is
// served from "/".
func NewResolver(routing Routing, base BaseProvider) *Resolver {
	if routing.ExcludeMode == "" {
		routing.ExcludeMode = ExcludeSubstring
	}
	if base == nil {
		base = StaticBase("/")
	}

	r := &Resolver{
		routing: routing,
		include: CompilePatterns(routing.Include),
		base:    base,
	}
	if routing.ExcludeMode == ExcludeGlob {
		r.exclude = CompilePatterns(routing.Exclude)
	}
	return r
}

// Routing returns the configuration the resolver was built with.
func (r *Resolver) Routing() Routing {
	return r.routing
}

// Resolve returns the URL for path, either on the CDN origin or under the
// deployment base path.
func (r *Resolver) Resolve(path string) string {
	return r.Explain(path).URL
}

// Explain routes path and reports every intermediate decision.
func (r *Resolver) Explain(path string) Decision {
	d := Decision{
		Input:      path,
		Normalized: strings.TrimPrefix(path, "/"),
	}

	d.MatchesInclude = r.matchesInclude(d.Normalized)
	d.MatchesExclude = r.matchesExclude(d.Normalized)
	d.UseCDN = r.cdnEnabled() && d.MatchesInclude && !d.MatchesExclude

	if d.UseCDN {
		stripped := strings.Replace(d.Normalized, assetsPrefix, "", 1)
		d.URL = r.routing.BaseURL + "/" + stripped
		return d
	}

	d.Base = r.base.Base()
	d.URL = strings.TrimSuffix(d.Base, "/") + "/" + d.Normalized
	return d
}

// Join resolves dir and appends file, the way image carousels build the URL
// of each slide from a per-character folder.
func (r *Resolver) Join(dir, file string) string {
	return r.Resolve(dir) + "/" + strings.TrimPrefix(file, "/")
}

func (r *Resolver) cdnEnabled() bool {
	return strings.TrimSpace(r.routing.BaseURL) != ""
}

func (r *Resolver) matchesInclude(path string) bool {
	if len(r.include) == 0 {
		return true
	}
	return MatchAny(r.include, path)
}

func (r *Resolver) matchesExclude(path string) bool {
	if r.routing.ExcludeMode == ExcludeGlob {
		return MatchAny(r.exclude, path)
	}
	for _, sub := range r.routing.Exclude {
		if strings.Contains(path, sub) {
			return true
		}
	}
	return false
}
