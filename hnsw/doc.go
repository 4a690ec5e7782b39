// Package hnsw implements the core of a Hierarchical Navigable Small
// World graph: a multilayer proximity structure supporting approximate
// nearest-neighbor search over fixed-dimension vectors.
//
// The package exposes the operation set an embedding caller needs —
// construct an Index, Insert vectors, Search for neighbors, query
// Size/Contains — plus two inspection helpers, BruteSearch (an exhaustive
// reference scan) and Stats (per-layer counts). Persistence, concurrency
// control, and any wire/CLI surface are the caller's responsibility.
package hnsw
