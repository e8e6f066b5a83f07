package sound

import (
	"fmt"
	"io"

	"github.com/mapplock/mapplock/internal/domain"
)

// Player implements ports.SoundPlayer
type Player struct {
	out io.Writer
}

// NewPlayer creates a new sound player. out receives the terminal bell
// where no system sound is available.
func NewPlayer(out io.Writer) *Player {
	return &Player{out: out}
}

// PlayForSeverity alerts for high and critical violations and is silent
// for anything less.
// Platform-specific implementations are in player_*.go files with build tags.
func (p *Player) PlayForSeverity(severity domain.Severity) error {
	if severity.Rank() < domain.SeverityHigh.Rank() {
		return nil
	}
	return p.play(severity)
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.out, "\a")
	return err
}
