// Package input reads raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals deliver repeats, not releases, so held keys are inferred
// from repeat cadence.
const keyHoldDuration = 150 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit  bool // Q
	Left  bool // A or left arrow
	Right bool // D or right arrow
	Space bool // release ball / start / restart
	Pause bool // P
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	space time.Time
	pause time.Time
}

// Stream delivers input bytes via a channel and tracks key state so
// simultaneous holds can be detected.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream until the reader fails (e.g. the session closed).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Read drains all available bytes (non-blocking), updates key state, and
// returns the current frame's input. Arrow keys arrive as CSI sequences.
func (s *Stream) Read() Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C': // right arrow
				s.state.right = now
			case 'D': // left arrow
				s.state.left = now
			}
			// Other CSI finals are consumed so their bytes do not
			// register as plain keys
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', '\x03':
			s.state.quit = now
		case 'a', 'A':
			s.state.left = now
		case 'd', 'D':
			s.state.right = now
		case ' ':
			s.state.space = now
		case 'p', 'P':
			s.state.pause = now
		}
	}

	return Input{
		Quit:  now.Sub(s.state.quit) < keyHoldDuration,
		Left:  now.Sub(s.state.left) < keyHoldDuration,
		Right: now.Sub(s.state.right) < keyHoldDuration,
		Space: now.Sub(s.state.space) < keyHoldDuration,
		Pause: now.Sub(s.state.pause) < keyHoldDuration,
	}
}

// Closed reports whether the underlying reader has ended, observed on the
// first Read after EOF. A closed stream delivers no further input.
func (s *Stream) Closed() bool {
	return s.closed
}

// Reset forgets all held keys. Used across state transitions so a key held
// through a screen change does not immediately trigger again.
func (s *Stream) Reset() {
	s.state = keyState{}
}
