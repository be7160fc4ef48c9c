// Package focustest provides a simulated Focus keyboard for tests and
// examples.
//
// A Keyboard implements transport.Transport. It parses the request lines
// written to it and answers the way Kaleidoscope firmware does: a command
// without arguments prints the setting's value, a command with arguments
// stores them, and every reply ends with a "." line.
//
//	kb := focustest.NewKeyboard(map[string]string{
//	    "led.brightness": "128",
//	}, "led.brightness")
//	s := focus.New(kb, focus.WithInterval(0))
package focustest

import (
	"errors"
	"sort"
	"strings"

	"github.com/moffa90/go-focus/protocol"
	"github.com/moffa90/go-focus/transport"
)

// ErrClosed is returned by a Keyboard after Close.
var ErrClosed = errors.New("keyboard disconnected")

// Keyboard simulates a Focus keyboard on the other end of a serial port.
type Keyboard struct {
	// ListBackup makes the keyboard answer the "backup" command with the
	// backup keys. Older firmware does not know the command.
	ListBackup bool

	// ReadSize caps the number of bytes returned by a single Read, to
	// exercise replies spanning several reads. Zero means no cap.
	ReadSize int

	// LineEnding terminates each reply line. Kaleidoscope uses "\r\n".
	LineEnding string

	values     map[string]string
	backupKeys []string

	in       []byte
	out      []byte
	received []byte
	requests []string
	writes   int
	dtr      bool
	closed   bool
}

// NewKeyboard returns a keyboard holding values. backupKeys is the list
// returned by the "backup" command, in order.
func NewKeyboard(values map[string]string, backupKeys ...string) *Keyboard {
	v := make(map[string]string, len(values))
	for k, val := range values {
		v[k] = val
	}
	return &Keyboard{
		ListBackup: true,
		LineEnding: "\r\n",
		values:     v,
		backupKeys: append([]string(nil), backupKeys...),
	}
}

// Write accepts request bytes and answers every complete line.
func (k *Keyboard) Write(p []byte) (int, error) {
	if k.closed {
		return 0, ErrClosed
	}
	k.writes++
	k.received = append(k.received, p...)
	k.in = append(k.in, p...)

	for {
		i := strings.IndexByte(string(k.in), protocol.Terminator)
		if i < 0 {
			break
		}
		line := string(k.in[:i])
		k.in = k.in[i+1:]
		k.handle(line)
	}
	return len(p), nil
}

// Read returns pending reply bytes, or transport.ErrTimeout when the
// keyboard has nothing more to say.
func (k *Keyboard) Read(p []byte) (int, error) {
	if k.closed {
		return 0, ErrClosed
	}
	if len(k.out) == 0 {
		return 0, transport.ErrTimeout
	}
	limit := len(k.out)
	if k.ReadSize > 0 && k.ReadSize < limit {
		limit = k.ReadSize
	}
	n := copy(p, k.out[:limit])
	k.out = k.out[n:]
	return n, nil
}

// Buffered reports the number of reply bytes not read yet.
func (k *Keyboard) Buffered() (int, error) {
	if k.closed {
		return 0, ErrClosed
	}
	return len(k.out), nil
}

// SetDTR records the Data Terminal Ready line.
func (k *Keyboard) SetDTR(dtr bool) error {
	k.dtr = dtr
	return nil
}

// Close disconnects the keyboard.
func (k *Keyboard) Close() error {
	k.closed = true
	return nil
}

// Emit queues unsolicited output, as firmware does for asynchronous events.
func (k *Keyboard) Emit(text string) {
	k.out = append(k.out, text...)
}

// Set changes a setting directly on the keyboard.
func (k *Keyboard) Set(key, value string) {
	k.values[key] = value
}

// Value returns the current value of a setting.
func (k *Keyboard) Value(key string) (string, bool) {
	v, ok := k.values[key]
	return v, ok
}

// Values returns a copy of all settings.
func (k *Keyboard) Values() map[string]string {
	v := make(map[string]string, len(k.values))
	for key, val := range k.values {
		v[key] = val
	}
	return v
}

// Keys returns the names of all settings, sorted.
func (k *Keyboard) Keys() []string {
	keys := make([]string, 0, len(k.values))
	for key := range k.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Requests returns the request lines received so far, without terminators.
func (k *Keyboard) Requests() []string {
	return append([]string(nil), k.requests...)
}

// Received returns every byte written to the keyboard.
func (k *Keyboard) Received() []byte {
	return append([]byte(nil), k.received...)
}

// Writes returns the number of Write calls.
func (k *Keyboard) Writes() int {
	return k.writes
}

// DTR reports the last Data Terminal Ready state set by the host.
func (k *Keyboard) DTR() bool {
	return k.dtr
}

// ResetLog forgets recorded requests and writes.
func (k *Keyboard) ResetLog() {
	k.requests = nil
	k.received = nil
	k.writes = 0
}

func (k *Keyboard) handle(line string) {
	k.requests = append(k.requests, line)

	command, rest, hasArgs := strings.Cut(line, string(protocol.Separator))
	switch {
	case command == "":
	case command == protocol.CmdBackup && k.ListBackup:
		for _, key := range k.backupKeys {
			k.println(key)
		}
	case command == protocol.CmdBackup:
	case hasArgs:
		if _, ok := k.values[command]; ok {
			k.values[command] = rest
		}
	default:
		if v, ok := k.values[command]; ok && v != "" {
			k.println(v)
		}
	}
	k.println(protocol.EndOfReply)
}

func (k *Keyboard) println(s string) {
	k.out = append(k.out, s...)
	k.out = append(k.out, k.LineEnding...)
}
