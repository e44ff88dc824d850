// Package encode writes ir nodes as JSON or YAML text.
//
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// JSON is indented by default; EncodeWire(true) produces compact output.
// YAML is always block style with scalars on a single line, quoting strings
// only when a plain scalar would read back differently.  EncodeColors adds
// terminal colors to keys and values.
package encode
