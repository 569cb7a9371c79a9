// Package registry provides HTTP clients for the package-ecosystem APIs
// that deptally consumes.
//
// Each API has its own subpackage:
//
//   - [librariesio]: libraries.io dependency-graph API (dependent packages)
//   - [pypistats]: pypistats.org download statistics
//
// The [Client] type provides the shared HTTP functionality used by both:
// context-aware GET requests, JSON decoding, and a common error taxonomy.
// All non-2xx responses map to a distinguishable error: [ErrNotFound] for
// 404, and [ErrNetwork] (wrapping the status code) for everything else.
// The clients perform no retries and no response caching; transient
// failures surface to the caller, who is expected to rerun against the
// checkpoint file.
//
// [librariesio]: deptally/pkg/registry/librariesio
// [pypistats]: deptally/pkg/registry/pypistats
package registry
