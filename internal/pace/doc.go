// Package pace is the adapter around the core solver: it parses the
// PACE-style OCM instance format from an io.Reader, strips isolated free
// vertices and merges twins into canonical representatives before handing
// the reduced graph to the core, and expands the core's 0-indexed output
// back into the external 1-indexed id space afterward.
package pace
