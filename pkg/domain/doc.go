// Package domain contains the core domain entities and types used by the
// application: users, cash game sessions, their players and recorded
// settlements. These types are free of infrastructure concerns so they can be
// shared across packages.
package domain
