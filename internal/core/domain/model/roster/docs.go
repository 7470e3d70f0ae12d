// Package roster contains the organization's reference entities: the
// drivers who run pickups and returns, the designers who place orders, and
// the sources (manufacturers) orders are collected from. These are simple
// org-owned records with no lifecycle of their own; pickups, returns and
// orders reference them by id and the manifest read model joins them in.
package roster
