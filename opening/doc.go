// Package opening cuts doors, open-plan openings and the main entrance
// into room walls.
//
// Doors is a pure geometric function: for each requested pair it takes the
// longest shared wall segment, centres a rectangular cut on it and clamps
// the cut to at most 70% of the segment so that a pier remains at both
// ends. Which width to request is the caller's policy; WidthFor encodes
// the default one (open plan between living, dining and kitchen, a
// standard door everywhere else).
//
// Entrance finds the hub's true exterior walls, i.e. its edges minus
// every piece touched by another room, keeps those at least a door wide,
// picks one of the three longest at random and cuts the main door at a
// random offset along it.
package opening
