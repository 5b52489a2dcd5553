// Package leftovers implements the leftover suggestion engine: it matches
// a chat's pantry contents against the recipe catalog, scores each recipe
// by how well it can be made right now, and returns a ranked list of
// suggestions. The engine itself is a pure function of its inputs; the
// Service front-end adds storage access and response caching.
package leftovers
