// Package protocol implements the Kaleidoscope Focus wire protocol.
//
// Focus is a plain-text, line-oriented request/reply protocol spoken by
// Kaleidoscope firmware over a USB CDC serial port.
//
// # Protocol Overview
//
//	Request: <command>[ <arg>]*\n
//	Reply:   zero or more lines of text, optionally followed by a "." line
//
// The reply carries no length and no reliable terminator. Newer firmware
// ends a reply with a single "." line, older firmware does not, so the end of
// a reply is detected by the port going quiet for one read timeout. That
// logic lives in the focus package; this package only deals with bytes.
//
// Arguments are joined with single spaces and there is no escaping: an
// argument containing whitespace is indistinguishable from several
// arguments on the device side.
//
// # Request Builder
//
//	req := protocol.BuildRequest("keymap.custom")
//	req := protocol.BuildRequest("led.brightness", "128")
//
// # Reply Parser
//
// ParseReply turns the raw bytes accumulated from the port into the text
// of the reply, dropping blank lines and "." sentinel lines:
//
//	text := protocol.ParseReply([]byte("1 \r\n.\r\n")) // "1 "
//
// # Serial Parameters
//
// The device is always driven at BaudRate (115200) with 8 data bits, no
// parity and one stop bit.
package protocol
