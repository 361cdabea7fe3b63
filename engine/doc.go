// Package engine distributes segment sieving across parallel workers and
// merges their ordered result streams.
//
// # Work distribution
//
// The Distributor partitions the segment index range into contiguous chunks,
// one per worker. Within a worker, segments are processed in strictly
// increasing index order, so each worker's output stream is ordered; across
// workers, chunks are disjoint and increasing, so Merge's k-way merge yields
// a fully ordered, duplicate-free result identical to the sequential result
// for the same bound.
//
// The contiguous-increasing-chunk property is a load-bearing invariant: the
// merge assumes every worker stream is ordered by construction. Any change to
// non-contiguous chunk assignment would silently break that precondition.
//
// # Failure model
//
// Parallel execution is an optimization, never a correctness requirement.
// Dispatch failures surface as ErrWorkerDispatch (matching the ErrDispatch
// sentinel) so callers can fall back to the sequential driver over the same
// parameters with identical output.
package engine
