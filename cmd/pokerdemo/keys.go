package main

import (
	"time"

	"pokerdemo/pkg/demo"
)

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// escapeTimeout is how long a lone escape waits for the rest of an arrow key sequence
const escapeTimeout = 50 * time.Millisecond

// command is a single key press translated into something the demo can do
type command struct {
	action demo.Action
	quit   bool
}

// keyParser turns raw terminal input into commands
// An escape sequence split across reads is held in pending until the rest arrives or Flush is called.
type keyParser struct {
	pending []byte
}

// Pending returns true if an incomplete escape sequence is waiting for more input
func (p *keyParser) Pending() bool {
	return len(p.pending) > 0
}

// Parse returns the commands for every complete key in b
// Unknown keys and escape sequences are dropped.
func (p *keyParser) Parse(b []byte) []command {
	data := append(p.pending, b...)
	p.pending = nil

	var cmds []command
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case keyEscape:
			if i+1 == len(data) || (data[i+1] == '[' && i+2 == len(data)) {
				p.pending = append([]byte(nil), data[i:]...)
				return cmds
			}

			if data[i+1] != '[' {
				cmds = append(cmds, command{quit: true})
				continue
			}

			switch data[i+2] {
			case 'C':
				cmds = append(cmds, command{action: demo.ActionNext})
			case 'D':
				cmds = append(cmds, command{action: demo.ActionReset})
			}

			i += 2
		case keyCtrlC, 'q', 'Q':
			cmds = append(cmds, command{quit: true})
		case 'h', 'H':
			cmds = append(cmds, command{action: demo.ActionToggleEvaluations})
		case 'w', 'W':
			cmds = append(cmds, command{action: demo.ActionToggleWinners})
		case 'n', 'N':
			cmds = append(cmds, command{action: demo.ActionNewHand})
		}
	}

	return cmds
}

// Flush gives up on a pending escape sequence
// A lone escape is the escape key, which quits; a bare "ESC [" is dropped.
func (p *keyParser) Flush() []command {
	pending := p.pending
	p.pending = nil

	if len(pending) == 1 {
		return []command{{quit: true}}
	}

	return nil
}
