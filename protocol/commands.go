package protocol

// BuildRequest constructs a request line for command with optional args.
//
// Request structure:
//
//	<command>[ <arg>]*\n
//
// Arguments are not escaped. The returned slice is ready to be written to
// the port, in one piece or in chunks.
//
// Example:
//
//	req := protocol.BuildRequest("led.brightness", "128") // "led.brightness 128\n"
func BuildRequest(command string, args ...string) []byte {
	size := len(command) + 1
	for _, arg := range args {
		size += 1 + len(arg)
	}

	req := make([]byte, 0, size)
	req = append(req, command...)
	for _, arg := range args {
		req = append(req, Separator)
		req = append(req, arg...)
	}
	req = append(req, Terminator)

	return req
}
