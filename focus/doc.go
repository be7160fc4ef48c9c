// Package focus provides a session API for talking to Kaleidoscope keyboards
// over the Focus protocol.
//
// # Overview
//
// A Session wraps an open transport and handles everything between "send
// this command" and "here is the reply":
//   - Asserting DTR so the keyboard knows a host is listening
//   - Writing the request in small, paced chunks
//   - Waiting for the keyboard to start answering
//   - Accumulating the reply until the port goes quiet
//   - Stripping blank lines and "." sentinel lines from the reply
//
// # Basic Usage
//
//	port, err := transport.Open("/dev/ttyACM0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s := focus.New(port)
//	defer s.Close()
//
//	if err := s.Flush(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	version, err := s.Command(ctx, "version")
//
// # Flushing
//
// Keyboards may print asynchronous output at any time. Flush sends an empty
// command and discards whatever comes back, so stale output is not mistaken
// for the reply to the next request. Call it once before the first request.
//
// # Progress Tracking
//
// An Observer sees every send and receive pass: Reset with the expected size
// (0 when unknown), then Progress for each chunk written or read:
//
//	s := focus.New(port, focus.WithObserver(focus.ProgressFunc(func(n int) {
//	    bytes += n
//	})))
//
// # Configuration Options
//
//	s := focus.New(port,
//	    focus.WithChunkSize(32),                 // 0 disables chunking
//	    focus.WithInterval(50*time.Millisecond), // pause between chunks and reads
//	    focus.WithLogger(myLogger),
//	)
//
// # Blocking and Cancellation
//
// Receive waits for the first byte of a reply without a timeout of its own.
// The context is checked between polls and reads, so a deadline on ctx
// bounds the wait. With context.Background a silent keyboard blocks the
// caller until the transport is closed from elsewhere.
//
// # Concurrency
//
// Requests are strictly sequential and a Session is not safe for concurrent
// use. The keyboard cannot tell interleaved requests apart.
//
// # Error Handling
//
// Transport failures are returned as *IOError. A read timeout is not an
// error: it is how the end of a reply is detected.
package focus
