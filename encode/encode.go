package encode

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/token"

	"github.com/signadot/objpath/format"
	"github.com/signadot/objpath/ir"
)

type EncState struct {
	indent int
	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node followed by a newline.  A nil node encodes as null.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	buf := bytes.NewBuffer(nil)
	encodeDoc(node, buf, es)
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// String returns the encoding of node without the trailing newline.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 1 {
		es.indent = 2
	}
	return es
}

func encodeDoc(node *ir.Node, buf *bytes.Buffer, es *EncState) {
	if es.format.IsJSON() {
		encodeJSON(node, buf, es, 0)
		return
	}
	if es.wire {
		// flow yaml is json
		encodeJSON(node, buf, es, 0)
		return
	}
	buf.WriteString(strings.Join(yamlLines(node, es), "\n"))
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

// json

func encodeJSON(node *ir.Node, buf *bytes.Buffer, es *EncState, depth int) {
	if node == nil {
		buf.WriteString(applyColor(es, ir.NullType, ValueColor, "null"))
		return
	}
	switch node.Type {
	case ir.ObjectType:
		if len(node.Values) == 0 {
			buf.WriteString(applyColor(es, ir.ObjectType, SepColor, "{}"))
			return
		}
		buf.WriteString(applyColor(es, ir.ObjectType, SepColor, "{"))
		for i, v := range node.Values {
			if i != 0 {
				buf.WriteString(applyColor(es, ir.ObjectType, SepColor, ","))
			}
			writeNL(buf, es, depth+1)
			buf.WriteString(applyColor(es, ir.ObjectType, FieldColor, quoteJSON(node.Fields[i].String)))
			buf.WriteString(applyColor(es, ir.ObjectType, SepColor, ":"))
			if !es.wire {
				buf.WriteByte(' ')
			}
			encodeJSON(v, buf, es, depth+1)
		}
		writeNL(buf, es, depth)
		buf.WriteString(applyColor(es, ir.ObjectType, SepColor, "}"))
	case ir.ArrayType:
		if len(node.Values) == 0 {
			buf.WriteString(applyColor(es, ir.ArrayType, SepColor, "[]"))
			return
		}
		buf.WriteString(applyColor(es, ir.ArrayType, SepColor, "["))
		for i, v := range node.Values {
			if i != 0 {
				buf.WriteString(applyColor(es, ir.ArrayType, SepColor, ","))
			}
			writeNL(buf, es, depth+1)
			encodeJSON(v, buf, es, depth+1)
		}
		writeNL(buf, es, depth)
		buf.WriteString(applyColor(es, ir.ArrayType, SepColor, "]"))
	default:
		buf.WriteString(applyColor(es, node.Type, ValueColor, scalarText(node, true)))
	}
}

func writeNL(buf *bytes.Buffer, es *EncState, depth int) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.indent*depth))
}

// yaml

func yamlLines(node *ir.Node, es *EncState) []string {
	if node == nil {
		return []string{applyColor(es, ir.NullType, ValueColor, "null")}
	}
	switch node.Type {
	case ir.ObjectType:
		if len(node.Values) == 0 {
			return []string{applyColor(es, ir.ObjectType, SepColor, "{}")}
		}
		ind := strings.Repeat(" ", es.indent)
		var lines []string
		for i, v := range node.Values {
			key := node.Fields[i].String
			if needsQuote(key) {
				key = quoteJSON(key)
			}
			key = applyColor(es, ir.ObjectType, FieldColor, key) + applyColor(es, ir.ObjectType, SepColor, ":")
			sub := yamlLines(v, es)
			if !isBlock(v) {
				lines = append(lines, key+" "+sub[0])
				continue
			}
			lines = append(lines, key)
			for _, ln := range sub {
				lines = append(lines, ind+ln)
			}
		}
		return lines
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return []string{applyColor(es, ir.ArrayType, SepColor, "[]")}
		}
		dash := applyColor(es, ir.ArrayType, SepColor, "-") + " "
		var lines []string
		for _, v := range node.Values {
			sub := yamlLines(v, es)
			lines = append(lines, dash+sub[0])
			for _, ln := range sub[1:] {
				lines = append(lines, "  "+ln)
			}
		}
		return lines
	default:
		return []string{applyColor(es, node.Type, ValueColor, scalarText(node, false))}
	}
}

func isBlock(node *ir.Node) bool {
	return node != nil && !node.Type.IsLeaf() && len(node.Values) != 0
}

func scalarText(node *ir.Node, isJSON bool) string {
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(node.Bool)
	case ir.NumberType:
		if node.Int64 != nil {
			return strconv.FormatInt(*node.Int64, 10)
		}
		if node.Float64 != nil {
			return floatText(*node.Float64, isJSON)
		}
		return node.Number
	case ir.StringType:
		if isJSON || needsQuote(node.String) {
			return quoteJSON(node.String)
		}
		return node.String
	default:
		panic("type")
	}
}

func floatText(f float64, isJSON bool) string {
	switch {
	case math.IsNaN(f):
		if isJSON {
			return "null"
		}
		return ".nan"
	case math.IsInf(f, 1):
		if isJSON {
			return "null"
		}
		return ".inf"
	case math.IsInf(f, -1):
		if isJSON {
			return "null"
		}
		return "-.inf"
	}
	v := strconv.FormatFloat(f, 'g', -1, 64)
	// keep floats reading back as floats
	if !strings.ContainsAny(v, ".e") {
		v += ".0"
	}
	return v
}

func quoteJSON(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// needsQuote reports whether s would not read back as the same string when
// written as a plain yaml scalar.  The decision is the yaml lexer's: s is
// plain only if it lexes to a single string token holding s.
func needsQuote(s string) bool {
	if token.IsNeedQuoted(s) {
		return true
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	tks := lexer.Tokenize(s)
	return len(tks) != 1 || tks[0].Type != token.StringType || tks[0].Value != s
}
