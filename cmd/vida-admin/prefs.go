// ABOUTME: Per-user preferences persisted as TOML in the XDG config directory
// ABOUTME: Saved filters become the default criteria for the células views

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/rodrigoeramirez/vida-console/internal/filter"
)

// Prefs are the console's per-user preferences. Only saved filters for
// now; the zero value means no defaults.
type Prefs struct {
	Filtros FiltrosPrefs `toml:"filtros"`
}

// FiltrosPrefs mirrors filter.Criteria in TOML form.
type FiltrosPrefs struct {
	Dias      []string `toml:"dias"`
	Genero    string   `toml:"genero"`
	HoraDesde string   `toml:"hora_desde"`
	HoraHasta string   `toml:"hora_hasta"`
	LiderID   int64    `toml:"lider_id"`
}

// Criteria converts the saved preferences into filter criteria.
func (p *Prefs) Criteria() filter.Criteria {
	return filter.Criteria{
		Dias:      p.Filtros.Dias,
		Genero:    p.Filtros.Genero,
		HoraDesde: p.Filtros.HoraDesde,
		HoraHasta: p.Filtros.HoraHasta,
		LiderID:   p.Filtros.LiderID,
	}
}

// SetCriteria stores filter criteria as the saved defaults. The search
// text is deliberately not persisted; it is ephemeral by nature.
func (p *Prefs) SetCriteria(c filter.Criteria) {
	p.Filtros = FiltrosPrefs{
		Dias:      c.Dias,
		Genero:    c.Genero,
		HoraDesde: c.HoraDesde,
		HoraHasta: c.HoraHasta,
		LiderID:   c.LiderID,
	}
}

// LoadPrefs reads preferences from path. A missing file returns empty
// preferences, not an error.
func LoadPrefs(path string) (*Prefs, error) {
	var p Prefs
	if _, err := toml.DecodeFile(path, &p); err != nil {
		if os.IsNotExist(err) {
			return &Prefs{}, nil
		}
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}
	return &p, nil
}

// Save writes the preferences back to path, creating the directory as
// needed.
func (p *Prefs) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	return nil
}
