// Package validation validates structs against their `validate` struct
// tags and converts the failures into the application's structured
// error type, with snake_case field names suitable for API responses.
package validation
