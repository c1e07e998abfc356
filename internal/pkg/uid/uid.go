// Package uid provides identifier generation behind small interfaces.
package uid

// StringID generates opaque string identifiers.
type StringID interface {
	Generate() string
}
