package dpath

import (
	"strconv"
	"strings"
)

const DefaultDelim = "."

// Segment is a single step of a path.  Key is always the raw text of the
// segment; Index is meaningful only when IsIndex is set.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

func (s Segment) String() string {
	return s.Key
}

// Key returns a segment for key, recognizing indices.
func Key(key string) Segment {
	i, ok := IsIndex(key)
	return Segment{Key: key, Index: i, IsIndex: ok}
}

// Index returns an index segment.
func Index(i int) Segment {
	return Segment{Key: strconv.Itoa(i), Index: i, IsIndex: true}
}

// Split splits p on delim.  An empty delim means DefaultDelim.
func Split(p, delim string) []Segment {
	if delim == "" {
		delim = DefaultDelim
	}
	parts := strings.Split(p, delim)
	res := make([]Segment, len(parts))
	for i, part := range parts {
		res[i] = Key(part)
	}
	return res
}

// Join is the inverse of Split.
func Join(segs []Segment, delim string) string {
	if delim == "" {
		delim = DefaultDelim
	}
	var b strings.Builder
	for i := range segs {
		if i != 0 {
			b.WriteString(delim)
		}
		b.WriteString(segs[i].Key)
	}
	return b.String()
}

// Append joins key onto prefix, treating an empty prefix as the root.
func Append(prefix, key, delim string) string {
	if prefix == "" {
		return key
	}
	if delim == "" {
		delim = DefaultDelim
	}
	return prefix + delim + key
}

// IsIndex reports whether s is a non-negative decimal integer and returns
// its value.
func IsIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Match reports whether path is selected by the path list entry.
func Match(path, entry, delim string) bool {
	if delim == "" {
		delim = DefaultDelim
	}
	if entry == "" {
		return false
	}
	p := delim + path + delim
	floating := strings.HasPrefix(entry, delim)
	below := strings.HasSuffix(entry, delim) && len(entry) > len(delim)
	e := strings.TrimSuffix(entry, delim)
	if !floating {
		e = delim + e
	}
	e += delim
	if floating {
		i := strings.Index(p, e)
		if i < 0 {
			return false
		}
		if !below {
			return true
		}
		for i >= 0 {
			if len(p) > i+len(e) {
				return true
			}
			j := strings.Index(p[i+1:], e)
			if j < 0 {
				return false
			}
			i += 1 + j
		}
		return false
	}
	if !strings.HasPrefix(p, e) {
		return false
	}
	return !below || len(p) > len(e)
}

// MatchAny reports whether any of entries matches path.
func MatchAny(path string, entries []string, delim string) bool {
	for _, e := range entries {
		if Match(path, e, delim) {
			return true
		}
	}
	return false
}
