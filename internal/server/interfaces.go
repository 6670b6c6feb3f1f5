package server

// Server is the lifecycle contract for the transport servers this
// package manages. RunServer blocks until a shutdown signal arrives or
// the listener fails; Shutdown stops accepting requests and drains the
// ones in flight.
type Server interface {
	RunServer()
	Shutdown()
}
