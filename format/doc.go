// Package format names the text formats objpath reads and writes.
//
//	f, err := format.ParseFormat("yaml")
//
// # Related Packages
//
//   - github.com/signadot/objpath/parse - Parse text to IR
//   - github.com/signadot/objpath/encode - Encode IR to text
package format
