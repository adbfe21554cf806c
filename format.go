package ics

import (
	"bytes"
	"io"
	"strings"
)

const crlf = "\r\n"

// Format writes the nodes to w as iCalendar text, every line followed
// by CRLF. Parameter values and property values are written back
// verbatim; no quoting or escaping is reapplied, so the output is
// re-parseable but not guaranteed byte-identical to the input a node
// came from.
func Format(w io.Writer, nodes ...Node) error {
	for _, n := range nodes {
		if err := formatNode(w, n); err != nil {
			return err
		}
	}
	return nil
}

// Render returns one node as iCalendar text, lines joined by CRLF with
// no trailing line end.
func Render(n Node) string {
	var buf bytes.Buffer
	formatNode(&buf, n)
	return strings.TrimSuffix(buf.String(), crlf)
}

// RenderAll renders a top-level node sequence, CRLF-joined.
func RenderAll(nodes []Node) string {
	var buf bytes.Buffer
	for _, n := range nodes {
		formatNode(&buf, n)
	}
	return strings.TrimSuffix(buf.String(), crlf)
}

func (cl *ContentLine) String() string { return Render(cl) }

func (c *Container) String() string { return Render(c) }

func formatNode(w io.Writer, n Node) error {
	switch n := n.(type) {
	case *ContentLine:
		return formatContentLine(w, n)
	case *Container:
		if _, err := io.WriteString(w, "BEGIN:"+n.Name+crlf); err != nil {
			return err
		}
		for _, child := range n.Children {
			if err := formatNode(w, child); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "END:"+n.Name+crlf)
		return err
	}
	return nil
}

func formatContentLine(w io.Writer, cl *ContentLine) error {
	var buf bytes.Buffer
	buf.WriteString(cl.Name)

	for _, p := range cl.Params {
		buf.WriteString(";")
		buf.WriteString(p.Name)
		buf.WriteString("=")
		for i, v := range p.Values {
			if i > 0 {
				buf.WriteString(",")
			}
			buf.WriteString(v)
		}
	}

	buf.WriteString(":")
	buf.WriteString(cl.Value)
	buf.WriteString(crlf)

	_, err := buf.WriteTo(w)
	return err
}
