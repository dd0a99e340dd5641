// Package geom provides the small 2D/3D vector vocabulary shared by the
// boltgroup packages: fastener positions and centroid offsets are Points,
// force and moment resultants are Vec3s.
//
// What:
//
//   - Point — 2D point/vector with the usual affine and vector operations.
//   - Vec3  — 3D vector with dot and cross products; its cross product is
//     what turns a torsional moment into an in-plane shear direction.
//
// Why:
//
//   - One coordinate vocabulary for the pattern generators, the analysis
//     engine, and the plot renderer, instead of ad-hoc (x, y) pairs.
//
// All operations are value-based and allocation-free.
package geom
