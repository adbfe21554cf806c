package ics

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The content-line micro-grammar:
//
//	contentline = [ name *( ";" param ) ] ":" value
//	param       = name "=" param-value *( "," param-value )
//	param-value = quoted-string / name
//	name        = 1*<any character except "=", ";", ":", ",", DQUOTE>
//	value       = everything after the first top-level ":", verbatim
//
// The lexer switches to the Value state on the first ":" it sees
// outside a quoted string, so the split between name/params and value
// happens at exactly that colon; later colons, semicolons, equals and
// quotes all land in the value untouched. A quoted-string keeps its
// surrounding quotes, may contain backslash-escaped quotes and may span
// embedded newlines.
var lineLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Quoted", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Colon", Pattern: `:`, Action: lexer.Push("Value")},
		{Name: "Semi", Pattern: `;`},
		{Name: "Equal", Pattern: `=`},
		{Name: "Comma", Pattern: `,`},
		{Name: "Word", Pattern: `[^=;:,"]+`},
	},
	"Value": {
		{Name: "Rest", Pattern: `(?s).+`},
	},
})

type lineGrammar struct {
	Head  *lineHead `parser:"@@?"`
	Value *string   `parser:"':' @Rest?"`
}

type lineHead struct {
	Name   string      `parser:"@Word"`
	Params []lineParam `parser:"@@*"`
}

type lineParam struct {
	Name   string   `parser:"';' @Word"`
	Values []string `parser:"'=' @(Quoted | Word) ( ',' @(Quoted | Word) )*"`
}

var lineParser = participle.MustBuild[lineGrammar](
	participle.Lexer(lineLexer),
)

// ParseLine parses one logical line into a ContentLine. The whole line
// must match the grammar; a line without any ":", a parameter without
// "=" or malformed quoting fails with a *ParseError carrying the line.
func ParseLine(line string) (*ContentLine, error) {
	if !strings.Contains(line, ":") {
		return nil, &ParseError{Line: line, Reason: errNoColon}
	}

	ast, err := lineParser.ParseString("", line)
	if err != nil {
		return nil, &ParseError{Line: line, Reason: err}
	}

	cl := &ContentLine{}
	if ast.Head != nil {
		cl.Name = strings.ToUpper(ast.Head.Name)
		for _, p := range ast.Head.Params {
			cl.Params = append(cl.Params, Param{Name: p.Name, Values: p.Values})
		}
	}
	if ast.Value != nil {
		cl.Value = strings.TrimRight(*ast.Value, " \t\r\n")
	}
	return cl, nil
}
