// Package database handles database connections and storage error translation.
//
// It provides a wrapper around GORM to configure MySQL, PostgreSQL or SQLite
// connections based on the application's configuration.
//
// # Connect
//
// Connect opens the configured dialect, tunes the connection pool and pings the
// server. Any failure is reported as a *ConnectionError (errors.Is ErrConnection),
// which the start command treats as fatal.
//
// # Errors
//
// MapError turns driver specific failures into the package taxonomy:
//   - ErrNotFound for missing rows
//   - *DuplicateKeyError (errors.Is ErrDuplicateKey) for unique index violations,
//     carrying the colliding field and the driver code
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	if err := database.MapError(db.Create(&u).Error); database.IsDuplicateKey(err) {
//	    // handle collision
//	}
package database
