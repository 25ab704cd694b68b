// Package store provides abstractions for data persistence.
//
// It defines the TaskStore interface implemented by the postgres
// platform package, the DBTX abstraction over connections and
// transactions, and the sentinel errors shared by all store
// implementations.
package store
