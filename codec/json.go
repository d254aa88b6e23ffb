package codec

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"
)

// JSON writes report lines with encoding/json.
//
// It is the portable choice; GoJSON writes the same bytes faster.
type JSON struct{}

var lineBufs = sync.Pool{New: func() any { return new(bytes.Buffer) }}

// WriteLine implements Codec. json.Encoder already terminates each value
// with '\n', so the buffer holds exactly one line.
func (JSON) WriteLine(w io.Writer, v any) error {
	buf := lineBufs.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		lineBufs.Put(buf)
	}()

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is selected.
var Default Codec = GoJSON{}
