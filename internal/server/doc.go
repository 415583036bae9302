// Package server wires and runs the application's transport servers.
//
// It binds every enabled listener before traffic is accepted, runs the HTTP
// and gRPC servers plus their background workers under one errgroup, and
// drains all of them when the context is cancelled or any of them fails.
package server
