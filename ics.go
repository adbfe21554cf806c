// Package ics implements a lexical parser and formatter for the
// iCalendar text format.
//
// iCalendar is defined in RFC 5545. The package stops at the structural
// layer: physical lines are unfolded into logical lines, each logical
// line is parsed into a ContentLine, and BEGIN/END runs are grouped into
// nested Containers. Semantic constraints (required properties,
// cardinality, date interpretation) are left to the caller.
package ics

import (
	"strings"
)

// A Node is one element of a parse tree, either a *ContentLine or a
// *Container. Callers switch on the concrete type.
type Node interface {
	node()
}

func (*ContentLine) node() {}
func (*Container) node()   {}

// A Param holds the ordered value list of one property parameter. The
// name is kept exactly as written, including case.
type Param struct {
	Name   string
	Values []string
}

// A ContentLine represents one property of calendar content.
//
// Name is uppercased for consistency and easier comparing. Params keeps
// the parameters in the order they were written; that order is part of
// equality and of the rendered output. Value is the raw remainder of
// the line after the first top-level ":". An empty Name is valid and
// distinct from a missing one: parsing ":hoho" yields Name "".
type ContentLine struct {
	Name   string
	Params []Param
	Value  string
}

// NewContentLine creates a ContentLine, uppercasing its name.
func NewContentLine(name string, params []Param, value string) *ContentLine {
	return &ContentLine{
		Name:   strings.ToUpper(name),
		Params: params,
		Value:  value,
	}
}

// Param returns the value list of the named parameter. Lookup is
// case-sensitive, matching the parameter as written.
func (cl *ContentLine) Param(name string) ([]string, bool) {
	for _, p := range cl.Params {
		if p.Name == name {
			return p.Values, true
		}
	}
	return nil, false
}

// SetParam replaces the value list of the named parameter, keeping its
// position in the parameter order, or appends a new parameter at the
// end if the name is not present.
func (cl *ContentLine) SetParam(name string, values ...string) {
	for i := range cl.Params {
		if cl.Params[i].Name == name {
			cl.Params[i].Values = values
			return
		}
	}
	cl.Params = append(cl.Params, Param{Name: name, Values: values})
}

// Equal reports whether both lines have the same name, value and
// parameter list. Parameter order matters.
func (cl *ContentLine) Equal(other *ContentLine) bool {
	if cl == nil || other == nil {
		return cl == other
	}
	if cl.Name != other.Name || cl.Value != other.Value {
		return false
	}
	if len(cl.Params) != len(other.Params) {
		return false
	}
	for i, p := range cl.Params {
		q := other.Params[i]
		if p.Name != q.Name {
			return false
		}
		if len(p.Values) != len(q.Values) {
			return false
		}
		for j, v := range p.Values {
			if v != q.Values[j] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the line.
func (cl *ContentLine) Clone() *ContentLine {
	dup := &ContentLine{Name: cl.Name, Value: cl.Value}
	if cl.Params != nil {
		dup.Params = make([]Param, len(cl.Params))
		for i, p := range cl.Params {
			dup.Params[i] = Param{
				Name:   p.Name,
				Values: append([]string(nil), p.Values...),
			}
		}
	}
	return dup
}

// A Container represents one calendar object: a BEGIN/END delimited
// block (VCALENDAR, VEVENT etc.) holding content lines and nested
// containers in document order.
//
// The name is taken from the BEGIN line's value and preserved as
// written; uppercase is not enforced.
type Container struct {
	Name     string
	Children []Node
}

// NewContainer creates a Container with the given children.
func NewContainer(name string, children ...Node) *Container {
	return &Container{Name: name, Children: children}
}

// Clone returns a deep copy of the container and all of its children.
func (c *Container) Clone() *Container {
	dup := &Container{Name: c.Name}
	if c.Children != nil {
		dup.Children = make([]Node, len(c.Children))
		for i, child := range c.Children {
			switch child := child.(type) {
			case *ContentLine:
				dup.Children[i] = child.Clone()
			case *Container:
				dup.Children[i] = child.Clone()
			}
		}
	}
	return dup
}
