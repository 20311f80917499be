// Package geo extracts GPS coordinates from image metadata and resolves them
// into location folder names through reverse geocoding.
package geo
