// Package utils provides general-purpose helper utilities used across
// different parts of the client: the shared HTTP client wrapper and the
// request identifier generator.
package utils
