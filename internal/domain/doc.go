// Package domain defines the core business entities and errors.
//
// The central entity is Task: a unit of work owned by exactly one user,
// with status, priority and an optional due date. Tasks validate their
// invariants on construction and expose small mutators that keep the
// UpdatedAt timestamp current.
package domain
