// Package types defines the record shapes, audience and visibility
// constants, configuration, and standard error values shared by the Haven
// store and data-access layers.
package types
