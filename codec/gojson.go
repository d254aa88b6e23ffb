package codec

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// GoJSON writes report lines with github.com/goccy/go-json.
type GoJSON struct{}

// WriteLine implements Codec.
func (GoJSON) WriteLine(w io.Writer, v any) error {
	b, err := gojson.MarshalNoEscape(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }
