// Package codec selects the encoder used for machine-readable reports.
//
// Reports are written as JSON Lines: one compact object per line, with
// HTML escaping off so input names such as "a&b<1>.bin" are written as
// they appear on the command line.
package codec

import (
	"fmt"
	"io"
)

// Codec writes report records.
// Implementations must be safe for concurrent use.
type Codec interface {
	// WriteLine encodes v as one compact JSON object followed by '\n'
	// and hands it to w in a single Write.
	WriteLine(w io.Writer, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Names lists the built-in codec names.
func Names() []string {
	return []string{"json", "go-json"}
}

// MustByName is ByName for names known at compile time.
func MustByName(name string) Codec {
	c, ok := ByName(name)
	if !ok {
		panic(fmt.Sprintf("codec: unknown codec %q", name))
	}
	return c
}
