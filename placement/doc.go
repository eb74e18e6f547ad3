// Package placement packs rectangular rooms around a hub, zone by zone.
//
// Algorithm
//
//  1. The first public room becomes the hub: a rectangle of the requested
//     area with a randomised aspect ratio, min corner at the origin.
//  2. Every other room is tried against a list of reference rooms. For a
//     reference, four flush candidates (right, left, top, bottom of its
//     bounding box) are built; candidates overlapping a placed room by
//     more than geometry.OverlapTolerance are discarded; the rest score
//     their total shared boundary with all placed rooms, plus a bonus on
//     the sides that keep the running footprint close to square.
//  3. References come in three stages, each an explicit attempt value:
//     primary (zone specific: dining for kitchens, the matching bedroom
//     for an ensuite bathroom, kitchens for storage), secondary (other
//     public rooms) and desperation (every placed room, shuffled).
//  4. A room that fails all three is recorded as a
//     layout.PlacementFailure and skipped.
//
// Zone order
//
//	public → semi-public → private (shuffled) → service → outdoor → other.
//
// Determinism
//
//	All randomness comes from the *rand.Rand passed to Synthesize; no map
//	is iterated when making a geometric decision.
package placement
