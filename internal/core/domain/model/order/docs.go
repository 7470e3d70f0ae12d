// Package order contains the Order aggregate: a unit of work to be
// delivered, owned by exactly one organization. An order moves through a
// fulfillment status, may be claimed by at most one non-archived pickup at a
// time, and becomes eligible for a return once delivered or picked up.
package order
