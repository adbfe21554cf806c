package ics

import "strings"

// An unfolder merges folded physical lines into logical lines, one pull
// at a time. A single pass over the input; not reusable.
//
// Folding is the RFC 5545 convention of continuing a long line on the
// next physical line behind a single leading space. Only a space marks
// a continuation; a leading tab starts a new logical line.
type unfolder struct {
	lines []string
	pos   int
	acc   string
}

// next returns the next logical line. Blank and whitespace-only lines
// are dropped; they neither end nor extend a logical line. Leading and
// trailing "\r" are stripped from every physical line.
func (u *unfolder) next() (string, bool) {
	for u.pos < len(u.lines) {
		line := u.lines[u.pos]
		u.pos++
		switch {
		case strings.TrimSpace(line) == "":
			// skip
		case u.acc == "":
			u.acc = strings.Trim(line, "\r")
		case line[0] == ' ':
			u.acc += strings.Trim(line[1:], "\r")
		default:
			logical := u.acc
			u.acc = strings.Trim(line, "\r")
			return logical, true
		}
	}
	if u.acc != "" {
		logical := u.acc
		u.acc = ""
		return logical, true
	}
	return "", false
}

// Unfold converts physical lines into logical lines, joining folded
// continuation lines and dropping blank ones. Input with no folds comes
// back unchanged except for blank-line removal.
func Unfold(lines []string) []string {
	u := &unfolder{lines: lines}
	var logical []string
	for line, ok := u.next(); ok; line, ok = u.next() {
		logical = append(logical, line)
	}
	return logical
}
