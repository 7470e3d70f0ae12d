// Package pickup contains the Pickup aggregate: a scheduled collection event
// bundling one or more orders for a single driver. A pickup owns the
// authoritative order set; the orders mirror the link through their pickupId,
// and the allocation service keeps both sides consistent.
package pickup
