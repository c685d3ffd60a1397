package blitz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse matches every *ParseError via errors.Is
	ErrParse = errors.New("blitz: parse error")
	// ErrStructure matches every *StructureError via errors.Is
	ErrStructure = errors.New("blitz: structure error")

	// ErrMissingAttr is the cause of a ParseError for an absent attribute
	ErrMissingAttr = errors.New("missing attribute")
	// ErrFileTooLarge is the cause of a ParseError when the size cap is hit
	ErrFileTooLarge = errors.New("file exceeds size limit")
)

// ParseError reports input that could not be read as XML, or a required
// attribute that is absent or not convertible to its declared type.
type ParseError struct {
	Path    string // source file, empty for streams
	Element string // element tag the attribute belongs to
	Attr    string
	Value   string
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("blitz: parse")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Element != "" {
		fmt.Fprintf(&b, ": <%s>", e.Element)
	}
	if e.Attr != "" {
		fmt.Fprintf(&b, " attribute %q", e.Attr)
		if e.Value != "" {
			fmt.Fprintf(&b, " = %q", e.Value)
		}
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// StructureError reports a required element that is absent.
type StructureError struct {
	Path    string // source file, empty for streams
	Element string // path of the missing element, relative to the root
	Name    string // required name attribute, if any
}

func (e *StructureError) Error() string {
	var b strings.Builder
	b.WriteString("blitz: structure")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	fmt.Fprintf(&b, ": missing element %s", e.Element)
	if e.Name != "" {
		fmt.Fprintf(&b, " with name %q", e.Name)
	}
	return b.String()
}

func (e *StructureError) Is(target error) bool { return target == ErrStructure }
