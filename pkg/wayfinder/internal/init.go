// Package internal holds the logging plumbing shared by the wayfinder
// packages. Types and functions in this package are not part of the public API.
package internal
