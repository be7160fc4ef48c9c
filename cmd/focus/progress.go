package main

import (
	"fmt"
	"io"

	"github.com/moffa90/go-focus/backup"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner draws a single status line on a terminal. It implements
// focus.Observer for byte progress and follows backup.Progress for the
// current key.
type spinner struct {
	w      io.Writer
	prefix string
	msg    string
	frame  int
	done   int
	total  int
	drawn  bool
}

func newSpinner(w io.Writer, prefix, msg string) *spinner {
	return &spinner{w: w, prefix: prefix, msg: msg}
}

// Reset starts counting a new request or reply.
func (s *spinner) Reset(total int) {
	s.total = total
	s.done = 0
	s.draw()
}

// Progress adds delta bytes.
func (s *spinner) Progress(delta int) {
	s.done += delta
	s.frame++
	s.draw()
}

// Step follows a backup or restore.
func (s *spinner) Step(p backup.Progress) {
	if p.Phase == backup.PhaseComplete {
		s.Finish()
		return
	}
	s.prefix = p.Phase + ": "
	s.msg = p.Key
	s.frame++
	s.draw()
}

// Finish clears the status line.
func (s *spinner) Finish() {
	if s.drawn {
		fmt.Fprint(s.w, "\r\033[K")
		s.drawn = false
	}
}

func (s *spinner) draw() {
	fmt.Fprintf(s.w, "\r\033[K%s %s%s", spinnerFrames[s.frame%len(spinnerFrames)], s.prefix, s.msg)
	switch {
	case s.total > 0:
		fmt.Fprintf(s.w, " %d/%d bytes", s.done, s.total)
	case s.done > 0:
		fmt.Fprintf(s.w, " %d bytes", s.done)
	}
	s.drawn = true
}
