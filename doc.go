// Package vecspace is a compact, generic linear-algebra toolkit for small
// dense transforms: the kind a camera, a raycaster or a 2-D/3-D geometry
// layer builds every frame.
//
// 🚀 What is in vecspace?
//
//	• matrix/: Matrix[T] and Vector[T] over any signed integer or float:
//		lazy O(1) transpose, dimension-checked Add/Sub/Mul, scalar mutators,
//		exact determinant (cofactor expansion), adjugate inverse, Dot/Cross,
//		structural patterns and gonum interop.
//	• examples/: a runnable camera-basis rotation demo.
//
// ✨ Why vecspace?
//
//   - Exact in the element type – no pivoting, no hidden float conversions
//   - Fail-fast – every shape mismatch is a typed sentinel error
//   - Zero-copy transposition – a flag, not a relayout
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	_ = m.CompDeterm()   // det = -2
//	inv, _ := m.Inverse() // [[-2, 1], [1.5, -0.5]]
//
//	go get github.com/katalvlaran/vecspace
package vecspace
