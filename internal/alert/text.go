package alert

import (
	"fmt"
	"io"
)

// UnsupportedNotice is written when no tone can be produced.
const UnsupportedNotice = "Beep sound not supported on this terminal."

// TextSink writes a plain notice instead of a tone.
type TextSink struct {
	Out io.Writer
}

func (s TextSink) Alert() error {
	_, err := fmt.Fprintln(s.Out, UnsupportedNotice)
	return err
}

func (s TextSink) Name() string { return "text" }
