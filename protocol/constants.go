package protocol

import "time"

// Serial line parameters. The baud rate is part of the protocol and is not
// configurable.
const (
	// BaudRate is the fixed serial speed used by Focus devices
	BaudRate = 115200

	// DataBits is the number of data bits per character
	DataBits = 8
)

// Framing constants.
const (
	// Terminator ends every request
	Terminator = '\n'

	// Separator joins the command and its arguments
	Separator = ' '

	// EndOfReply is the legacy sentinel line some firmware emits after a reply.
	// It is stripped from replies but never relied upon for termination.
	EndOfReply = "."
)

// Well-known commands.
const (
	// CmdNoop is the empty command used to flush pending output
	CmdNoop = " "

	// CmdBackup lists the commands whose values make up a configuration backup
	CmdBackup = "backup"

	// CmdHelp lists every command the firmware understands
	CmdHelp = "help"

	// CmdVersion reports the firmware version
	CmdVersion = "version"
)

// Pacing defaults.
const (
	// DefaultChunkSize is the default maximum number of bytes per write.
	// Older firmware and some USB serial stacks drop data on long writes.
	DefaultChunkSize = 32

	// DefaultInterval is the default delay between chunks, polls and reads
	DefaultInterval = 50 * time.Millisecond

	// DefaultReadTimeout is the default quiet period that ends a reply
	DefaultReadTimeout = 50 * time.Millisecond

	// ReadBufferSize is the size of the buffer used for each read of a reply
	ReadBufferSize = 1024
)
