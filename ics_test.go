package ics

import "testing"

func TestNewContentLineUppercasesName(t *testing.T) {
	cl := NewContentLine("dtstart", nil, "20131029T103000")

	if cl.Name != "DTSTART" {
		t.Errorf("Name = %q, want DTSTART", cl.Name)
	}
}

func TestEqualParamOrder(t *testing.T) {
	a, err := ParseLine("X;A=1;B=2:v")
	if err != nil {
		t.Fatal(err)
	}

	b, err := ParseLine("X;B=2;A=1:v")
	if err != nil {
		t.Fatal(err)
	}

	if a.Equal(b) {
		t.Errorf("%s and %s compare equal, parameter order should matter", a, b)
	}

	c, err := ParseLine("X;A=1;B=2:v")
	if err != nil {
		t.Fatal(err)
	}

	if !a.Equal(c) {
		t.Errorf("%s and %s compare unequal", a, c)
	}
}

func TestSetParamKeepsPosition(t *testing.T) {
	cl, err := ParseLine("X;A=1;B=2:v")
	if err != nil {
		t.Fatal(err)
	}

	cl.SetParam("A", "9")

	if got := cl.String(); got != "X;A=9;B=2:v" {
		t.Errorf("String() = %q, want X;A=9;B=2:v", got)
	}

	cl.SetParam("C", "3", "4")

	if got := cl.String(); got != "X;A=9;B=2;C=3,4:v" {
		t.Errorf("String() = %q, want X;A=9;B=2;C=3,4:v", got)
	}

	if vals, ok := cl.Param("C"); !ok || len(vals) != 2 {
		t.Errorf("Param(C) = %v, %v", vals, ok)
	}

	if _, ok := cl.Param("a"); ok {
		t.Errorf("Param lookup should be case-sensitive")
	}
}

func TestCloneIsDeep(t *testing.T) {
	cl, err := ParseLine("X;A=1:v")
	if err != nil {
		t.Fatal(err)
	}

	dup := cl.Clone()
	dup.SetParam("A", "changed")

	if vals, _ := cl.Param("A"); vals[0] != "1" {
		t.Errorf("mutating the clone changed the original: %v", vals)
	}

	if !cl.Equal(cl.Clone()) {
		t.Errorf("clone is not equal to its original")
	}
}

func TestContainerCloneIsDeep(t *testing.T) {
	c := NewContainer("A",
		&ContentLine{Name: "K", Value: "v"},
		NewContainer("B", &ContentLine{Name: "L", Value: "w"}),
	)

	dup := c.Clone()
	dup.Children[0].(*ContentLine).Value = "changed"
	dup.Children[1].(*Container).Name = "C"

	if got := c.Children[0].(*ContentLine).Value; got != "v" {
		t.Errorf("mutating the clone changed the original: %q", got)
	}

	if got := c.Children[1].(*Container).Name; got != "B" {
		t.Errorf("mutating the clone changed the original: %q", got)
	}

	if Render(dup) == Render(c) {
		t.Errorf("clone mutations did not take")
	}
}
