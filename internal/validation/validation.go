// Package validation binds HTTP requests into payload structs and turns
// validator tag failures into the 400 error envelope clients receive.
package validation
