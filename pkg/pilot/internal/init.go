// Package internal contains the logging infrastructure shared by the pilot
// packages. Types and functions in this package are not part of the public API.
package internal
