// Package utils provides common utility functions for the datastore.
// It includes type conversion helpers used to coerce identifiers coming from
// HTTP and CLI input, and the scalar-or-slice normalization shared by the
// datastore operations.
package utils
