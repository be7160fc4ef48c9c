// Package transport provides the byte-stream connection to a Focus device.
//
// The Transport interface is what a focus.Session drives: blocking writes,
// reads bounded by a read timeout, and a "bytes available" query used to
// wait for a device to start answering. A read that sees no data for one
// read timeout returns ErrTimeout, which is how the end of a reply is
// detected; it is a signal, not a failure.
//
// # Serial Ports
//
// Open returns a *Serial backed by go.bug.st/serial, configured for the
// Focus line parameters (115200 8N1):
//
//	port, err := transport.Open("/dev/ttyACM0",
//	    transport.WithReadTimeout(50*time.Millisecond),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
// # Custom Transports
//
// Anything implementing Transport can be used instead, which is how the
// tests and the simulated keyboard in examples/mock_device work. Transports
// that can signal "data terminal ready" implement LineController as well;
// sessions skip the signal for those that don't.
package transport
