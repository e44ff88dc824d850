package objpath

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/signadot/objpath/debug"
	"github.com/signadot/objpath/ir"
	"github.com/signadot/objpath/ir/dpath"
)

// FormatKeys returns a copy of node with object keys rewritten by
// replacing every match of pattern with fn of the match.
//
// A key is rewritten when its path, built from the original keys and
// array indices, matches one of the Include entries (if any) and none of
// the Exclude entries.  Entries are matched with dpath.Match.  When two
// keys of an object end up equal, the later value takes the position of
// the earlier one.
func FormatKeys(node *ir.Node, pattern *regexp.Regexp, fn func(string) string, options ...Option) *ir.Node {
	if node == nil {
		return nil
	}
	o := mkOpts(options)
	return formatKeys(node, "", pattern, fn, o)
}

func formatKeys(n *ir.Node, path string, pattern *regexp.Regexp, fn func(string) string, o *opts) *ir.Node {
	switch n.Type {
	case ir.ObjectType:
		res := ir.Object()
		for i, v := range n.Values {
			key := n.Fields[i].String
			p := dpath.Append(path, key, o.delim)
			sub := formatKeys(v, p, pattern, fn, o)
			if o.selects(p) {
				nk := pattern.ReplaceAllStringFunc(key, fn)
				if debug.Keys() && nk != key {
					debug.Logf("keys %q: %q -> %q\n", p, key, nk)
				}
				key = nk
			}
			res.Put(key, sub)
		}
		return res
	case ir.ArrayType:
		res := ir.Array()
		for i, v := range n.Values {
			res.Append(formatKeys(v, dpath.Append(path, strconv.Itoa(i), o.delim), pattern, fn, o))
		}
		return res
	default:
		return n.Clone()
	}
}

func (o *opts) selects(path string) bool {
	if len(o.includes) != 0 && !dpath.MatchAny(path, o.includes, o.delim) {
		return false
	}
	return !dpath.MatchAny(path, o.excludes, o.delim)
}

// Presets only touch separators between alphanumerics, so leading,
// trailing and doubled separators such as "_id" or "__typename" are left
// as they are.  A single letter or digit must follow a separator for it
// to be folded into camel case, so "a_1" is kept.
var (
	camelRE     = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
	snakeWordRE = regexp.MustCompile(`[A-Za-z0-9](?:_[a-z])+`)
	dashWordRE  = regexp.MustCompile(`[A-Za-z0-9](?:-[a-z])+`)
	snakeSepRE  = regexp.MustCompile(`[A-Za-z0-9](?:_[A-Za-z0-9])+`)
	dashSepRE   = regexp.MustCompile(`[A-Za-z0-9](?:-[A-Za-z0-9])+`)
)

// casers are not safe for concurrent use, so each call makes its own.

// lowered returns a function joining the camel case words of a key with
// sep, lower cased.  Acronyms are one word: userID is user, id and
// parseHTTPServer is parse, http, server.
func lowered(sep string) func(string) string {
	c := cases.Lower(language.Und)
	return func(key string) string {
		return c.String(strings.Join(camelWords(key), sep))
	}
}

func camelWords(s string) []string {
	rs := []rune(s)
	var words []string
	start := 0
	for i := 1; i < len(rs); i++ {
		if !unicode.IsUpper(rs[i]) {
			continue
		}
		prev := rs[i-1]
		acronymEnd := unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1])
		if unicode.IsLower(prev) || unicode.IsDigit(prev) || acronymEnd {
			words = append(words, string(rs[start:i]))
			start = i
		}
	}
	return append(words, string(rs[start:]))
}

// raised returns a function dropping sep from a match and upper casing the
// letter after each one.
func raised(sep string) func(string) string {
	c := cases.Upper(language.Und)
	return func(m string) string {
		parts := strings.Split(m, sep)
		for i := 1; i < len(parts); i++ {
			parts[i] = c.String(parts[i])
		}
		return strings.Join(parts, "")
	}
}

func replaced(old, sep string) func(string) string {
	return func(m string) string { return strings.ReplaceAll(m, old, sep) }
}

// LowerCamelToSnake rewrites fooBar keys as foo_bar.
func LowerCamelToSnake(node *ir.Node, options ...Option) *ir.Node {
	return FormatKeys(node, camelRE, lowered("_"), options...)
}

// LowerCamelToDash rewrites fooBar keys as foo-bar.
func LowerCamelToDash(node *ir.Node, options ...Option) *ir.Node {
	return FormatKeys(node, camelRE, lowered("-"), options...)
}

// SnakeToLowerCamel rewrites foo_bar keys as fooBar.
func SnakeToLowerCamel(node *ir.Node, options ...Option) *ir.Node {
	return FormatKeys(node, snakeWordRE, raised("_"), options...)
}

// SnakeToDash rewrites foo_bar keys as foo-bar.
func SnakeToDash(node *ir.Node, options ...Option) *ir.Node {
	return FormatKeys(node, snakeSepRE, replaced("_", "-"), options...)
}

// DashToLowerCamel rewrites foo-bar keys as fooBar.
func DashToLowerCamel(node *ir.Node, options ...Option) *ir.Node {
	return FormatKeys(node, dashWordRE, raised("-"), options...)
}

// DashToSnake rewrites foo-bar keys as foo_bar.
func DashToSnake(node *ir.Node, options ...Option) *ir.Node {
	return FormatKeys(node, dashSepRE, replaced("-", "_"), options...)
}

// Presets maps preset names to their functions.
var Presets = map[string]func(*ir.Node, ...Option) *ir.Node{
	"camel-snake": LowerCamelToSnake,
	"camel-dash":  LowerCamelToDash,
	"snake-camel": SnakeToLowerCamel,
	"snake-dash":  SnakeToDash,
	"dash-camel":  DashToLowerCamel,
	"dash-snake":  DashToSnake,
}
