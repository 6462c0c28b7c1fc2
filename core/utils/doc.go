// Package utils provides common conversion helpers shared by the token engines.
// It renders loosely-typed values decoded from JSON or YAML (numbers, booleans,
// byte slices) into stable display strings.
package utils
