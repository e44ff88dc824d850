// Package parse decodes JSON and YAML documents into ir nodes.
//
//	node, err := parse.Parse(data)                    // YAML, which includes JSON
//	node, err := parse.Parse(data, parse.ParseJSON()) // reject anything but JSON
//
// Object key order is preserved.  An empty document parses as null.
// Only the first document of a multi-document YAML stream is read.
package parse
