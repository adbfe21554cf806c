package ics

import (
	"errors"
	"strings"
)

// errEndOfInput signals a drained stream to the container builder. It
// never escapes the package; exhaustion at the wrong depth is reported
// as a *StructureError.
var errEndOfInput = errors.New("end of input")

// A lineSource supplies logical lines one at a time.
type lineSource interface {
	next() (string, bool)
}

type sliceLines struct {
	lines []string
	pos   int
}

func (s *sliceLines) next() (string, bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.pos]
	s.pos++
	return line, true
}

// A recordStream supplies content lines one at a time. The container
// builder owns the stream for the duration of a parse: recursive calls
// all advance this one cursor, so a nested container consumes the
// records its parent never sees.
type recordStream interface {
	next() (*ContentLine, error)
}

// A tokenizer parses logical lines into content lines on demand. A
// malformed line surfaces its *ParseError on the pull that reaches it.
type tokenizer struct {
	src lineSource
}

func (t *tokenizer) next() (*ContentLine, error) {
	line, ok := t.src.next()
	if !ok {
		return nil, errEndOfInput
	}
	return ParseLine(line)
}

type sliceRecords struct {
	records []*ContentLine
	pos     int
}

func (s *sliceRecords) next() (*ContentLine, error) {
	if s.pos >= len(s.records) {
		return nil, errEndOfInput
	}
	cl := s.records[s.pos]
	s.pos++
	return cl, nil
}

// Tokenize parses each logical line into a ContentLine. The first
// malformed line aborts the whole run with its *ParseError.
func Tokenize(lines []string) ([]*ContentLine, error) {
	t := &tokenizer{src: &sliceLines{lines: lines}}
	var records []*ContentLine
	for {
		cl, err := t.next()
		if err == errEndOfInput {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, cl)
	}
}

// parseContainer consumes records from the shared stream until the END
// matching name. The END record itself is discarded. A nested BEGIN
// recurses over the same stream.
func parseContainer(name string, stream recordStream) (*Container, error) {
	c := &Container{Name: name}
	for {
		cl, err := stream.next()
		if err == errEndOfInput {
			return nil, &StructureError{Expected: name}
		}
		if err != nil {
			return nil, err
		}
		switch cl.Name {
		case "BEGIN":
			child, err := parseContainer(cl.Value, stream)
			if err != nil {
				return nil, err
			}
			c.Children = append(c.Children, child)
		case "END":
			if cl.Value != name {
				return nil, &StructureError{Expected: name, Actual: cl.Value}
			}
			return c, nil
		default:
			c.Children = append(c.Children, cl)
		}
	}
}

// parseNodes is the top-level driver: a BEGIN opens a container, any
// other record stays a top-level leaf. There is no implicit root
// container.
func parseNodes(stream recordStream) ([]Node, error) {
	var nodes []Node
	for {
		cl, err := stream.next()
		if err == errEndOfInput {
			return nodes, nil
		}
		if err != nil {
			return nil, err
		}
		if cl.Name == "BEGIN" {
			child, err := parseContainer(cl.Value, stream)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, child)
		} else {
			nodes = append(nodes, cl)
		}
	}
}

// ParseRecords groups an already tokenized record sequence into a tree:
// an ordered mix of top-level content lines and containers.
func ParseRecords(records []*ContentLine) ([]Node, error) {
	return parseNodes(&sliceRecords{records: records})
}

// ParseText runs the whole pipeline over raw iCalendar text: split into
// physical lines, unfold, tokenize, group. Each stage pulls from the
// one before it, so a malformed line or a nesting violation surfaces at
// the point it is reached.
func ParseText(text string) ([]Node, error) {
	u := &unfolder{lines: strings.Split(text, "\n")}
	return parseNodes(&tokenizer{src: u})
}
