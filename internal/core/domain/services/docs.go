// Package services provides domain services that orchestrate business
// operations across multiple aggregates. The allocation rules between
// orders and pickups span both aggregates, so they live here rather than
// on either one.
package services
