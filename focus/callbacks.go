package focus

// Observer is notified while a request is written and while a reply is read.
// It is purely advisory and never affects control flow.
//
// Reset is called once at the start of each pass with the number of bytes
// expected (the request length when sending, 0 when receiving since a reply
// has no known length). Progress is then called with the size of each chunk
// written or read.
type Observer interface {
	Reset(total int)
	Progress(delta int)
}

// NopObserver ignores all progress.
type NopObserver struct{}

// Reset does nothing.
func (NopObserver) Reset(int) {}

// Progress does nothing.
func (NopObserver) Progress(int) {}

// ProgressFunc adapts a function to an Observer that only counts bytes.
//
// Example:
//
//	var sent int
//	s := focus.New(port, focus.WithObserver(focus.ProgressFunc(func(n int) {
//	    sent += n
//	})))
type ProgressFunc func(delta int)

// Reset does nothing.
func (f ProgressFunc) Reset(int) {}

// Progress calls f(delta).
func (f ProgressFunc) Progress(delta int) {
	f(delta)
}

// Logger is an optional logging interface that can be provided to a session.
// This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	s := focus.New(port, focus.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
