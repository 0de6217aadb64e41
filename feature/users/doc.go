// Package users implements the user resource.
//
// # Components
//
//   - Repository: GORM persistence with database errors mapped to the storage
//     taxonomy (ErrNotFound, ErrDuplicateKey).
//   - Service: validation and CRUD orchestration.
//   - Handler: HTTP endpoints; failures are returned to the global error handler.
//   - Seeder: inserts the four sample users, ignoring duplicates, so it can run on
//     every start outside production.
//   - Exporter: uploads a JSON snapshot of all users to object storage.
//   - Feature: registers the routes with the loader.
//
// # HTTP Endpoints
//
//   - GET    /api/users      : List users.
//   - POST   /api/users      : Create a user (400 validation, 409 duplicate).
//   - GET    /api/users/:id  : Get a user.
//   - PUT    /api/users/:id  : Update the fields present in the body.
//   - DELETE /api/users/:id  : Delete a user.
package users
