// Package mosaic generates the triangle tiling that covers a viewport.
//
// A pass starts from one seed triangle at the origin and grows outward
// in rings. Each ring mirrors everything generated so far, flips its
// orientation and shifts three copies of it along the deviation
// vectors, so the set grows by a factor of four per ring:
//
//   - [Generate]: pure expansion from a seed, size and gap
//   - [Builder]: value-typed configuration for a pass
//   - [PlanRings]: ring count of a pass without allocating it
//   - [Visible]: viewport culling of a generated set
//
// # Example
//
//	triangles, err := mosaic.NewBuilder().
//		WithSize(1920, 1080).
//		WithRadius(12).
//		WithGap(1.1, 1.1).
//		Build()
//	if err != nil {
//		return err
//	}
//	visible := mosaic.Visible(triangles, mosaic.Size{Width: 1920, Height: 1080})
//
// Everything in this package is pure and safe for concurrent use.
package mosaic
