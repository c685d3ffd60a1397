package blitz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// parseDecimal is strconv.ParseFloat restricted to decimal notation; the
// hexadecimal form ("0x1p3") is refused.
func parseDecimal(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, fmt.Errorf("%q is not a decimal number", s)
	}
	return strconv.ParseFloat(s, 64)
}

// parseIntFromFloat parses an integer that the drawing tool may have
// written as "3" or "3.0". Fractional values are rejected.
func parseIntFromFloat(s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("parseIntFromFloat: %q is not a valid int", s)
	}
	return int(f), nil
}

// attrs reads typed attribute values off one element. Every failure is a
// *ParseError naming the file, element and attribute.
type attrs struct {
	path string
	elem *etree.Element
}

func (a attrs) fail(key, value string, err error) error {
	return &ParseError{Path: a.path, Element: a.elem.Tag, Attr: key, Value: value, Err: err}
}

func (a attrs) str(key string) (string, error) {
	attr := a.elem.SelectAttr(key)
	if attr == nil {
		return "", a.fail(key, "", ErrMissingAttr)
	}
	return attr.Value, nil
}

func (a attrs) float(key string) (float64, error) {
	raw, err := a.str(key)
	if err != nil {
		return 0, err
	}
	v, err := parseDecimal(strings.TrimSpace(raw))
	if err != nil {
		return 0, a.fail(key, raw, err)
	}
	return v, nil
}

func (a attrs) int(key string) (int, error) {
	raw, err := a.str(key)
	if err != nil {
		return 0, err
	}
	v, err := parseIntFromFloat(strings.TrimSpace(raw))
	if err != nil {
		return 0, a.fail(key, raw, err)
	}
	return v, nil
}

// floats reads several float attributes in order, stopping at the first
// failure.
func (a attrs) floats(keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, k := range keys {
		v, err := a.float(k)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// all copies every attribute into a new map keyed by the attribute name as
// written in the file (with its namespace prefix, if any).
func (a attrs) all() map[string]string {
	m := make(map[string]string, len(a.elem.Attr))
	for _, attr := range a.elem.Attr {
		m[attr.FullKey()] = attr.Value
	}
	return m
}
