// Package pkg provides the core libraries for deptally.
//
// The pkg directory is organized into four areas:
//
//  1. [registry] - HTTP clients for libraries.io and pypistats.org
//  2. [checkpoint] - The ordered, three-state progress table and its CSV format
//  3. [pipeline] - Orchestration: fetch dependents, resolve downloads, flush
//  4. [buildinfo] - Build-time version information
//
// The typical data flow:
//
//	libraries.io dependents (ranked by stars)
//	         ↓
//	checkpoint CSV (all rows unresolved)
//	         ↓
//	pypistats.org per-package downloads, flushed after every run
//
// [registry]: deptally/pkg/registry
// [checkpoint]: deptally/pkg/checkpoint
// [pipeline]: deptally/pkg/pipeline
// [buildinfo]: deptally/pkg/buildinfo
package pkg
