// Package validation provides struct validation using go-playground/validator.
//
// It is used by the codec package to enforce schema-validated model shapes
// and by the config package to check declaration files before they reach
// the gateway resolver.
package validation
