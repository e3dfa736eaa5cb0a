// Package physics implements the per-particle and pairwise kernels of the
// simulation:
//
//   - [Attract]: point-source attraction/repulsion applied to the heading
//   - [Reflect]: wall reflection with clamping, returns the bounce count
//   - [Collides] and [Resolve]: circle-circle overlap test and elastic
//     equal-mass response with positional correction
//
// All functions mutate particles in place and never fail. Degenerate
// geometry (coincident points) is skipped silently.
//
// # Heading Asymmetry
//
// Attract renormalizes the heading; Resolve does not. Collisions
// therefore change the heading length, which scales the effective speed
// until the next attraction restores it. This is preserved on purpose:
// normalizing after collisions changes the energy behaviour of the system.
package physics
