// Package memfile provides an in-memory output file, for use in unit tests.
// Writes can be made to fail after a given number of bytes, to simulate a
// full disk.
package memfile
