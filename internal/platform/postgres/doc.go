// Package postgres implements the store interfaces using a PostgreSQL
// database reached through the pgx driver's database/sql adapter.
package postgres
