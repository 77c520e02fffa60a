// Package matrix offers a small generic dense linear-algebra engine.
//
// The matrix package provides:
//
//   - Matrix[T]: a dense 2-D container with O(1) lazy transposition, exact
//     determinant by cofactor expansion (CompDeterm) and adjugate inverse.
//   - Vector[T]: a dense 1-D container viewed as a 1×n row or n×1 column,
//     sharing the Matrixified contract with Matrix.
//   - Dimension-checked arithmetic written once against Matrixified:
//     Add, Sub, Mul, AddScalar, SubScalar, Scale, DivScalar.
//   - Structural builders (NewPattern) and gonum interop (ToGonum, FromGonum).
//
// Element types are any signed integer or float (see Scalar). Determinant and
// inverse are exact in T and factorial in the dimension: they target the
// 2×2–4×4 transforms of camera and geometry code, not general numerics.
//
// Failures on data (shapes, singularity, missing determinant) are returned as
// sentinel errors matched with errors.Is. Unchecked indexing outside the
// logical size and malformed Vector shapes are programmer errors and panic.
//
// See the examples in this package for usage patterns.
package matrix
