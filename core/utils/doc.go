// Package utils provides small conversion helpers shared by the configuration
// loader and the HTTP handlers.
//
// It includes loose boolean parsing for query parameters and a ByteSize type
// that accepts human readable sizes ("5GiB", "100 MB") in configuration files
// and environment variables.
package utils
