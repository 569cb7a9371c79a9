// Package librariesio provides an HTTP client for the libraries.io API.
//
// # Overview
//
// This package fetches the reverse-dependency graph of a PyPI package from
// libraries.io (https://libraries.io): every package that declares a
// dependency on a given package, ranked by GitHub star count.
//
// # Usage
//
//	client, err := librariesio.NewClient(apiKey, "", 0, logger)
//	if err != nil {
//	    log.Fatal(err)  // missing API key
//	}
//
//	names, err := client.Dependents(ctx, "pandas")
//	// names is sorted by descending star count, one entry per package
//
// # Authentication
//
// libraries.io requires an API key on every request. The key is injected at
// construction; [NewClient] fails before any network activity if it is empty.
//
// # Pagination
//
// The dependents endpoint is paginated. The client first fetches the
// package's dependents_count, derives the number of pages from the page
// size, and walks every page, logging progress as it goes. Packages that
// appear on more than one page (the upstream data can shift mid-pagination)
// are deduplicated by name, keeping the last-seen star count.
package librariesio
