package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/raythurman2386/draugrs-descent/internal/component"
)

// EnemyTemplate holds static base data for an enemy variant loaded from YAML.
// Runtime attributes are these values multiplied by the wave's difficulty
// tier at spawn time; the template itself never changes.
type EnemyTemplate struct {
	ID       string  `yaml:"id"`
	Behavior string  `yaml:"behavior"` // basic, ranged, charger
	Health   float64 `yaml:"health"`
	Damage   float64 `yaml:"damage"`
	Speed    float64 `yaml:"speed"` // world units per second
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`

	Color [4]uint8 `yaml:"color"` // RGBA fill used by the shell

	// Ranged variant only.
	PreferredRange  float64 `yaml:"preferred_range"`
	FireIntervalMs  float64 `yaml:"fire_interval_ms"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProjectileRange float64 `yaml:"projectile_range"`

	// Charger variant only.
	TriggerRange     float64 `yaml:"trigger_range"` // dash arms inside this distance
	WindupMs         float64 `yaml:"windup_ms"`
	DashMultiplier   float64 `yaml:"dash_multiplier"`
	DashDurationMs   float64 `yaml:"dash_duration_ms"`
	RecoverMs        float64 `yaml:"recover_ms"`
	ChargeCooldownMs float64 `yaml:"charge_cooldown_ms"` // re-arm delay after recovery

	behavior component.Behavior // parsed form of Behavior
}

// BehaviorKind returns the parsed variant tag.
func (t *EnemyTemplate) BehaviorKind() component.Behavior { return t.behavior }

type enemyListFile struct {
	Enemies []EnemyTemplate `yaml:"enemies"`
}

// EnemyTable holds all enemy templates, indexed by ID and by behavior
// variant. The spawner picks a variant from the wave distribution and stamps
// that variant's template.
type EnemyTable struct {
	templates  map[string]*EnemyTemplate
	byBehavior map[component.Behavior]*EnemyTemplate
}

// LoadEnemyTable loads enemy templates from a YAML file. Malformed templates
// are a load-time error, not a spawn-time one: every variant must appear
// exactly once with positive attributes, and variant-specific parameters must
// be present on the variant that needs them.
func LoadEnemyTable(path string) (*EnemyTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read enemy_list: %w", err)
	}
	var f enemyListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse enemy_list: %w", err)
	}
	t := &EnemyTable{
		templates:  make(map[string]*EnemyTemplate, len(f.Enemies)),
		byBehavior: make(map[component.Behavior]*EnemyTemplate, len(f.Enemies)),
	}
	for i := range f.Enemies {
		e := &f.Enemies[i]
		if err := validateEnemy(e); err != nil {
			return nil, fmt.Errorf("enemy_list: template %q: %w", e.ID, err)
		}
		if _, dup := t.templates[e.ID]; dup {
			return nil, fmt.Errorf("enemy_list: duplicate template id %q", e.ID)
		}
		if _, dup := t.byBehavior[e.behavior]; dup {
			return nil, fmt.Errorf("enemy_list: duplicate behavior %q", e.Behavior)
		}
		t.templates[e.ID] = e
		t.byBehavior[e.behavior] = e
	}
	for _, b := range []component.Behavior{component.BehaviorBasic, component.BehaviorRanged, component.BehaviorCharger} {
		if _, ok := t.byBehavior[b]; !ok {
			return nil, fmt.Errorf("enemy_list: no template for behavior %q", b)
		}
	}
	return t, nil
}

func validateEnemy(e *EnemyTemplate) error {
	if e.ID == "" {
		return fmt.Errorf("missing id")
	}
	b, err := component.ParseBehavior(e.Behavior)
	if err != nil {
		return err
	}
	e.behavior = b
	if e.Health <= 0 || e.Damage <= 0 || e.Speed <= 0 {
		return fmt.Errorf("health, damage and speed must be positive")
	}
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	switch b {
	case component.BehaviorRanged:
		if e.PreferredRange <= 0 || e.FireIntervalMs <= 0 || e.ProjectileSpeed <= 0 || e.ProjectileRange <= 0 {
			return fmt.Errorf("ranged variant needs positive preferred_range, fire_interval_ms, projectile_speed and projectile_range")
		}
	case component.BehaviorCharger:
		if e.TriggerRange <= 0 || e.WindupMs <= 0 || e.DashDurationMs <= 0 || e.RecoverMs <= 0 || e.ChargeCooldownMs <= 0 {
			return fmt.Errorf("charger variant needs positive trigger_range, windup_ms, dash_duration_ms, recover_ms and charge_cooldown_ms")
		}
		if e.DashMultiplier < 1 {
			return fmt.Errorf("charger dash_multiplier must be >= 1, got %g", e.DashMultiplier)
		}
	}
	return nil
}

// Get returns the template by ID, or nil if not found.
func (t *EnemyTable) Get(id string) *EnemyTemplate {
	return t.templates[id]
}

// ByBehavior returns the template for a behavior variant.
func (t *EnemyTable) ByBehavior(b component.Behavior) *EnemyTemplate {
	return t.byBehavior[b]
}

// Count returns the number of loaded templates.
func (t *EnemyTable) Count() int {
	return len(t.templates)
}
