package defs

// TowerKind tags one archetype from the closed set of tower types.
type TowerKind string

const (
	TowerGun    TowerKind = "TOWER_GUN"
	TowerRapid  TowerKind = "TOWER_RAPID"
	TowerSniper TowerKind = "TOWER_SNIPER"
	TowerBlast  TowerKind = "TOWER_BLAST"
	TowerTesla  TowerKind = "TOWER_TESLA"
)

// TowerDefinition holds all the static data for a specific kind of tower.
// Behavior is the one true behavioral branch: single-target towers launch
// projectiles, area towers resolve their damage instantly at fire time.
type TowerDefinition struct {
	Kind            TowerKind    `yaml:"kind"`
	Name            string       `yaml:"name"`
	Cost            int          `yaml:"cost"`
	Range           float64      `yaml:"range"`            // pixels
	Damage          int          `yaml:"damage"`           // per shot / per firing
	FireInterval    float64      `yaml:"fire_interval"`    // seconds between firings
	ProjectileSpeed float64      `yaml:"projectile_speed"` // pixels per second; unused for area towers
	Behavior        BehaviorType `yaml:"behavior"`
}

// TowerLibrary maps every tower kind to its definition. It starts with the
// built-in table and may be replaced entry-by-entry by LoadTowerDefinitions.
var TowerLibrary = map[TowerKind]TowerDefinition{
	TowerGun:    {Kind: TowerGun, Name: "Gun Turret", Cost: 50, Range: 120, Damage: 10, FireInterval: 0.8, ProjectileSpeed: 260, Behavior: BehaviorSingleTarget},
	TowerRapid:  {Kind: TowerRapid, Name: "Rapid Turret", Cost: 70, Range: 100, Damage: 4, FireInterval: 0.25, ProjectileSpeed: 300, Behavior: BehaviorSingleTarget},
	TowerSniper: {Kind: TowerSniper, Name: "Sniper Nest", Cost: 90, Range: 220, Damage: 35, FireInterval: 2.0, ProjectileSpeed: 420, Behavior: BehaviorSingleTarget},
	TowerBlast:  {Kind: TowerBlast, Name: "Blast Mortar", Cost: 80, Range: 90, Damage: 8, FireInterval: 1.5, Behavior: BehaviorAreaOfEffect},
	TowerTesla:  {Kind: TowerTesla, Name: "Tesla Coil", Cost: 110, Range: 70, Damage: 6, FireInterval: 0.6, Behavior: BehaviorAreaOfEffect},
}
