package data

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/raythurman2386/draugrs-descent/internal/component"
)

// PowerupTemplate holds static data for a pickup type loaded from YAML.
// Effect magnitudes live in the powerups config section; the table decides
// which pickup drops and how it looks.
type PowerupTemplate struct {
	ID     string   `yaml:"id"`
	Effect string   `yaml:"effect"` // health, shield, weapon_boost
	Weight int      `yaml:"weight"` // relative drop weight
	Color  [4]uint8 `yaml:"color"`

	effect component.PowerupEffect
}

// EffectKind returns the parsed effect tag.
func (t *PowerupTemplate) EffectKind() component.PowerupEffect { return t.effect }

type powerupListFile struct {
	Powerups []PowerupTemplate `yaml:"powerups"`
}

// PowerupTable holds all pickup templates indexed by ID.
type PowerupTable struct {
	templates   map[string]*PowerupTemplate
	order       []*PowerupTemplate // load order, for weighted rolls
	totalWeight int
}

// LoadPowerupTable loads pickup templates from a YAML file.
func LoadPowerupTable(path string) (*PowerupTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read powerup_list: %w", err)
	}
	var f powerupListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse powerup_list: %w", err)
	}
	if len(f.Powerups) == 0 {
		return nil, fmt.Errorf("powerup_list: no templates")
	}
	t := &PowerupTable{templates: make(map[string]*PowerupTemplate, len(f.Powerups))}
	for i := range f.Powerups {
		p := &f.Powerups[i]
		if p.ID == "" {
			return nil, fmt.Errorf("powerup_list: template %d: missing id", i)
		}
		eff, err := component.ParsePowerupEffect(p.Effect)
		if err != nil {
			return nil, fmt.Errorf("powerup_list: template %q: %w", p.ID, err)
		}
		p.effect = eff
		if p.Weight <= 0 {
			return nil, fmt.Errorf("powerup_list: template %q: weight must be positive", p.ID)
		}
		if _, dup := t.templates[p.ID]; dup {
			return nil, fmt.Errorf("powerup_list: duplicate template id %q", p.ID)
		}
		t.templates[p.ID] = p
		t.order = append(t.order, p)
		t.totalWeight += p.Weight
	}
	return t, nil
}

// Get returns the template by ID, or nil if not found.
func (t *PowerupTable) Get(id string) *PowerupTemplate {
	return t.templates[id]
}

// Roll picks a template by relative weight.
func (t *PowerupTable) Roll(rng *rand.Rand) *PowerupTemplate {
	n := rng.Intn(t.totalWeight)
	for _, p := range t.order {
		n -= p.Weight
		if n < 0 {
			return p
		}
	}
	return t.order[len(t.order)-1]
}

// Count returns the number of loaded templates.
func (t *PowerupTable) Count() int {
	return len(t.templates)
}
