// Package server exposes the analysis engine as a small JSON API.
//
// What:
//
//   - POST /api/v1/pattern — resolve a layout: pivot, total area and the
//     inertia triple for a posted point set.
//   - POST /api/v1/loads — distribute a resultant over a layout: per-
//     fastener axial and shear loads plus the shear envelope.
//   - GET /healthz — liveness probe.
//
// Both analysis endpoints accept the same geometry fields (points, areas
// or uniform_area, optional pivot and units); /loads adds force and
// moment triples. Responses echo the resolved unit symbols so clients
// never guess magnitudes.
//
// Config:
//
//   - LoadConfig reads BOLTGROUP_ADDR, BOLTGROUP_RATE_RPS,
//     BOLTGROUP_RATE_BURST and BOLTGROUP_SHUTDOWN_TIMEOUT from the
//     environment, after loading an optional .env file.
//   - API routes sit behind a per-client token bucket; exhausted clients
//     receive 429.
//
// Errors:
//
//   - Malformed JSON and invalid-argument analysis errors (empty point
//     set, area mismatches, unknown units, non-finite numbers) map to 400.
//   - A moment about a degenerate axis maps to 422: the payload parsed,
//     the configuration cannot carry the load.
//
// Run serves until its context is canceled, then drains connections
// within the configured shutdown timeout. Handler hands the routed mux
// to tests and embedding callers.
package server
