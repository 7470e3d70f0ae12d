// Package organization contains the tenant aggregate and its subscription
// plan. Every other aggregate in the system is owned by exactly one
// organization, and the plan's limits bound how many orders and pickups the
// tenant may hold.
package organization
