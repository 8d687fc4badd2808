// Package anim drives the per-frame animation of a materialized mosaic.
//
// A [Cycle] owns a fixed set of [Shape] values. Each [Cycle.Step] eases
// every shape's scale toward one, rotates every stroke hue and moves a
// single round-robin cursor one position forward.
package anim
