//go:build darwin

package sound

import (
	"os/exec"

	"github.com/mapplock/mapplock/internal/domain"
)

// play uses afplay on macOS
func (p *Player) play(severity domain.Severity) error {
	soundFiles := []string{
		"/System/Library/Sounds/Funk.aiff",
		"/System/Library/Sounds/Tink.aiff",
	}
	if severity == domain.SeverityCritical {
		soundFiles = []string{
			"/System/Library/Sounds/Sosumi.aiff",
			"/System/Library/Sounds/Basso.aiff",
		}
	}

	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return p.terminalBell()
}
