// Package config loads, merges and validates the configuration of the server
// and the terminal client.
//
// Configuration is assembled from several sources. For every field the first
// source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetStructuredConfig] returns the validated server configuration and
// [GetClientConfig] the client view.
package config
