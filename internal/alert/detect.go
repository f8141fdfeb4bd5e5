package alert

import (
	"io"
	"os"

	"github.com/akyairhashvil/alarm/internal/config"
	"golang.org/x/term"
)

// Host describes the capabilities Detect probes for.
type Host struct {
	// Tone is the tone generator, nil when the host has none.
	Tone Player
	// Terminal is the bell destination, nil when no terminal is attached.
	Terminal io.Writer
}

// SystemHost probes the running process.
func SystemHost() Host {
	h := Host{Tone: SpeakerPlayer{}}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		h.Terminal = os.Stderr
	}
	return h
}

// Detect picks a Sink for mode on the running host. Notices from the text
// fallback go to text.
func Detect(mode string, text io.Writer) Sink {
	return DetectOn(SystemHost(), mode, text)
}

// DetectOn picks a Sink for mode given the host capabilities. A tone that
// fails degrades to the bell when a terminal is attached, and the bell
// degrades to the text notice.
func DetectOn(h Host, mode string, text io.Writer) Sink {
	var chain []Sink
	switch mode {
	case config.AlertText:
	case config.AlertTone:
		if h.Tone != nil {
			chain = append(chain, NewToneSink("tone", h.Tone))
		}
	case config.AlertBell:
		if h.Terminal != nil {
			chain = append(chain, NewToneSink("bell", BellPlayer{Out: h.Terminal}))
		}
	default:
		if h.Tone != nil {
			chain = append(chain, NewToneSink("tone", h.Tone))
		}
		if h.Terminal != nil {
			chain = append(chain, NewToneSink("bell", BellPlayer{Out: h.Terminal}))
		}
	}

	var sink Sink = TextSink{Out: text}
	for i := len(chain) - 1; i >= 0; i-- {
		sink = Fallback{Primary: chain[i], Secondary: sink}
	}
	return sink
}
