package alert

//go:generate mockgen -source=tone.go -destination=mock_player_test.go -package=alert

import (
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/alarm/internal/config"
	"github.com/gen2brain/beeep"
)

// Player emits one tone pulse and blocks for its length.
type Player interface {
	Play(frequency int, length time.Duration) error
}

// ToneSink plays Count pulses through a Player.
type ToneSink struct {
	Player    Player
	Frequency int
	Length    time.Duration
	Count     int
	label     string
}

func NewToneSink(label string, p Player) *ToneSink {
	return &ToneSink{
		Player:    p,
		Frequency: config.BeepFrequency,
		Length:    config.BeepLength,
		Count:     config.BeepCount,
		label:     label,
	}
}

func (s *ToneSink) Alert() error {
	for i := 0; i < s.Count; i++ {
		if err := s.Player.Play(s.Frequency, s.Length); err != nil {
			return fmt.Errorf("tone pulse %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *ToneSink) Name() string { return s.label }

// SpeakerPlayer sounds the host tone generator: the Beep API on Windows and
// the PC speaker on Linux. It blocks for the pulse length.
type SpeakerPlayer struct{}

func (SpeakerPlayer) Play(frequency int, length time.Duration) error {
	return beeep.Beep(float64(frequency), int(length.Milliseconds()))
}

// BellPlayer rings the terminal bell. The terminal picks the pitch, so
// frequency is ignored; the pulse length is honoured by sleeping.
type BellPlayer struct {
	Out   io.Writer
	Sleep func(time.Duration)
}

func (p BellPlayer) Play(_ int, length time.Duration) error {
	if _, err := io.WriteString(p.Out, "\a"); err != nil {
		return err
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(length)
	return nil
}
