// Package kernel contains value objects shared across the domain model:
// entity identifiers, priorities and monetary cost. All types here are
// immutable, validated at construction and safe for concurrent use.
package kernel
