// Package returns contains the Return aggregate: a scheduled collection
// event for delivered or picked-up orders being sent back. Returns share the
// pickup lifecycle labels but run an independent state machine, and unlike
// pickups they do not write a back-reference onto the orders they carry.
package returns
