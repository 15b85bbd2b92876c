package kconfig

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Prefix is prepended to every assignment key.
const Prefix = "CONFIG_"

// element is one line of a fragment. The set is closed: comment, blankLine
// and assignment are the only implementations.
type element interface {
	isElement()
}

type comment struct{ text string }

type blankLine struct{}

type assignment struct{ key, value string }

func (comment) isElement()    {}
func (blankLine) isElement()  {}
func (assignment) isElement() {}

// Builder accumulates the elements of a fragment. Elements are only ever
// appended. A Builder is not safe for concurrent use.
type Builder struct {
	elements []element
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Append adds the assignment CONFIG_key=value.
func (b *Builder) Append(key, value string) *Builder {
	b.elements = append(b.elements, assignment{key: key, value: value})
	return b
}

// AppendIf adds the assignment only when cond holds.
func (b *Builder) AppendIf(cond bool, key, value string) *Builder {
	if cond {
		b.Append(key, value)
	}
	return b
}

// Blank adds an empty line.
func (b *Builder) Blank() *Builder {
	b.elements = append(b.elements, blankLine{})
	return b
}

// Comment adds a `# text` line.
func (b *Builder) Comment(text string) *Builder {
	b.elements = append(b.elements, comment{text: text})
	return b
}

// Heading adds a boxed section title:
//
//	(blank)
//	# Title #
//	# ----- #
//	(blank)
//
// The rule has one dash per character of text.
func (b *Builder) Heading(text string) *Builder {
	return b.
		Blank().
		Comment(text + " #").
		Comment(strings.Repeat("-", utf8.RuneCountInString(text)) + " #").
		Blank()
}

// Len returns the number of elements added so far.
func (b *Builder) Len() int {
	return len(b.elements)
}

// Render returns the fragment text. Every element ends with a newline.
func (b *Builder) Render() string {
	var sb strings.Builder
	for _, e := range b.elements {
		switch e := e.(type) {
		case comment:
			sb.WriteString("# ")
			sb.WriteString(e.text)
		case blankLine:
		case assignment:
			sb.WriteString(Prefix)
			sb.WriteString(e.key)
			sb.WriteByte('=')
			sb.WriteString(e.value)
		default:
			panic(fmt.Sprintf("kconfig: unhandled element %T", e))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (b *Builder) String() string {
	return b.Render()
}

// Bool renders v as a Kconfig bool literal.
func Bool(v bool) string {
	if v {
		return "y"
	}
	return "n"
}

// Quote renders s as a Kconfig string literal.
func Quote(s string) string {
	return `"` + s + `"`
}
