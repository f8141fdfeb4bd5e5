// Package alert emits the completion alert. A Sink is selected once at
// startup from what the host can do: a tone player when one is available,
// otherwise a plain-text notice.
package alert

//go:generate mockgen -destination=../timer/mock_sink_test.go -package=timer github.com/akyairhashvil/alarm/internal/alert Sink

// Sink fires the completion alert.
type Sink interface {
	Alert() error
	Name() string
}

// Fallback tries Primary and degrades to Secondary when it fails.
type Fallback struct {
	Primary   Sink
	Secondary Sink
}

func (f Fallback) Alert() error {
	if err := f.Primary.Alert(); err == nil {
		return nil
	}
	return f.Secondary.Alert()
}

func (f Fallback) Name() string { return f.Primary.Name() }
