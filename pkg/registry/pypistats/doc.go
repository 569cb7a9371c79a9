// Package pypistats provides an HTTP client for the pypistats.org API.
//
// pypistats.org publishes PyPI download statistics. deptally uses a single
// endpoint, /api/packages/{package}/recent, to read a package's download
// count for the most recent month.
//
//	client := pypistats.NewClient("")
//	n, err := client.RecentDownloads(ctx, "requests")
//
// A 404 response maps to [registry.ErrNotFound] so callers can distinguish
// "package does not exist" from transient failures like rate limiting.
package pypistats
