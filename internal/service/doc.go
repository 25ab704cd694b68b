// Package service contains the application's business logic.
//
// TaskService orchestrates task CRUD, filtering and aggregation against
// an injected store.TaskStore, enforcing ownership and required-field
// rules. It raises sentinel errors that the API layer translates into
// HTTP status codes.
package service
