// Package validation wraps go-playground/validator for entity schemas.
//
// Entities declare constraints with `validate` tags and may attach a human readable
// `message` tag per field. Struct returns a *ValidationError listing every violated
// field by its JSON name, which the HTTP error handler maps to 400.
package validation
