//go:build !darwin

package sound

import "github.com/mapplock/mapplock/internal/domain"

// play falls back to the terminal bell, twice for critical violations
func (p *Player) play(severity domain.Severity) error {
	if severity == domain.SeverityCritical {
		if err := p.terminalBell(); err != nil {
			return err
		}
	}
	return p.terminalBell()
}
