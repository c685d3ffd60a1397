// Package blitz reads scene diagrams saved by the Blitz crash
// reconstruction drawing tool (.blz files) into core records.
//
// A Reader holds one parsed document and never mutates it, so a single
// Reader may be shared by concurrent callers.
package blitz

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/beevik/etree"
)

const (
	pathData   = "data"
	pathLayers = "scene/layers"
	pathLayer  = "scene/layers/layer"
)

// Reader gives read-only access to one parsed scene document.
type Reader struct {
	path         string
	root         *etree.Element
	logger       *slog.Logger
	defaultLayer string

	// logSink is the log file opened by OpenWithConfig, if any.
	logSink io.Closer
}

// Layer is an opaque handle to one layer element of a document.
type Layer struct {
	name string
	path string
	elem *etree.Element
}

// Name returns the layer's name attribute.
func (l *Layer) Name() string {
	return l.name
}

// Open parses the file at path. A missing, unreadable, oversized or
// malformed file yields a *ParseError.
func Open(path string, opts ...Option) (*Reader, error) {
	o := newOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	if o.maxFileSize > 0 {
		st, err := f.Stat()
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		if st.Size() > o.maxFileSize {
			return nil, &ParseError{
				Path: path,
				Err:  fmt.Errorf("%w: %d > %d bytes", ErrFileTooLarge, st.Size(), o.maxFileSize),
			}
		}
	}

	return newReader(path, f, o)
}

// NewReader parses a document from r.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	return newReader("", r, newOptions(opts))
}

func newReader(path string, r io.Reader, o options) (*Reader, error) {
	if o.maxFileSize > 0 {
		r = io.LimitReader(r, o.maxFileSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if o.maxFileSize > 0 && int64(len(data)) > o.maxFileSize {
		return nil, &ParseError{
			Path: path,
			Err:  fmt.Errorf("%w: more than %d bytes", ErrFileTooLarge, o.maxFileSize),
		}
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := checkWellFormed(doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Path: path, Err: errors.New("document has no root element")}
	}

	o.logger.Debug("Parsed scene document",
		"path", path,
		"bytes", len(data),
		"root", root.Tag)

	return &Reader{
		path:         path,
		root:         root,
		logger:       o.logger,
		defaultLayer: o.defaultLayer,
	}, nil
}

// Close releases the log file opened by OpenWithConfig. Readers built any
// other way hold nothing and Close is a no-op. The Reader must not be used
// after Close.
func (r *Reader) Close() error {
	if r.logSink == nil {
		return nil
	}
	err := r.logSink.Close()
	r.logSink = nil
	return err
}

// Path returns the file the reader was opened on, or "" for streams.
func (r *Reader) Path() string {
	return r.path
}

// ReadMetadata returns the attributes of the root's data element as a new
// map.
func (r *Reader) ReadMetadata() (map[string]string, error) {
	data := r.root.SelectElement(pathData)
	if data == nil {
		return nil, &StructureError{Path: r.path, Element: pathData}
	}
	return attrs{path: r.path, elem: data}.all(), nil
}

// ReadLayer finds the first scene/layers/layer whose name attribute equals
// name exactly. An empty name means the reader's default layer.
func (r *Reader) ReadLayer(name string) (*Layer, error) {
	name = r.layerName(name)
	for _, e := range r.root.FindElements("./" + pathLayer) {
		if a := e.SelectAttr("name"); a != nil && a.Value == name {
			return &Layer{name: name, path: r.path, elem: e}, nil
		}
	}
	return nil, &StructureError{Path: r.path, Element: pathLayer, Name: name}
}

// LayerNames lists the name of every layer in document order.
func (r *Reader) LayerNames() ([]string, error) {
	layers := r.root.FindElement("./" + pathLayers)
	if layers == nil {
		return nil, &StructureError{Path: r.path, Element: pathLayers}
	}
	var names []string
	for _, e := range layers.SelectElements("layer") {
		names = append(names, e.SelectAttrValue("name", ""))
	}
	return names, nil
}

func (r *Reader) layerName(name string) string {
	if name == "" {
		return r.defaultLayer
	}
	return name
}

// checkWellFormed rejects what etree tolerates on read: more than one
// top-level element, text outside the root element and repeated
// attributes on one element.
func checkWellFormed(doc *etree.Document) error {
	elements := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			elements++
			if elements > 1 {
				return fmt.Errorf("second top-level element <%s>", t.FullTag())
			}
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return errors.New("text outside the root element")
			}
		}
	}
	if root := doc.Root(); root != nil {
		return checkUniqueAttrs(root)
	}
	return nil
}

func checkUniqueAttrs(e *etree.Element) error {
	seen := make(map[string]struct{}, len(e.Attr))
	for _, a := range e.Attr {
		key := a.FullKey()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate attribute %q on <%s>", key, e.FullTag())
		}
		seen[key] = struct{}{}
	}
	for _, child := range e.ChildElements() {
		if err := checkUniqueAttrs(child); err != nil {
			return err
		}
	}
	return nil
}
