package defs

// EnemyKind tags one archetype from the closed set of enemy types.
type EnemyKind string

const (
	EnemyBasic EnemyKind = "ENEMY_BASIC"
	EnemyFast  EnemyKind = "ENEMY_FAST"
	EnemyTank  EnemyKind = "ENEMY_TANK"
	EnemySwarm EnemyKind = "ENEMY_SWARM"
	EnemyBoss  EnemyKind = "ENEMY_BOSS"
)

// EnemyDefinition holds all the static data for a specific kind of enemy.
// Behavior never differs by kind; only these numbers do.
type EnemyDefinition struct {
	Kind       EnemyKind `yaml:"kind"`
	Name       string    `yaml:"name"`
	Health     int       `yaml:"health"`      // base max health, before wave scaling
	Speed      float64   `yaml:"speed"`       // pixels per second along the path
	Reward     int       `yaml:"reward"`      // coins credited on a kill
	BaseDamage int       `yaml:"base_damage"` // base health lost when it escapes
	Radius     float64   `yaml:"radius"`      // visual radius in pixels
}

// EnemyLibrary maps every enemy kind to its definition. It starts with the
// built-in table and may be replaced entry-by-entry by LoadEnemyDefinitions.
var EnemyLibrary = map[EnemyKind]EnemyDefinition{
	EnemyBasic: {Kind: EnemyBasic, Name: "Runner", Health: 30, Speed: 60, Reward: 5, BaseDamage: 2, Radius: 10},
	EnemyFast:  {Kind: EnemyFast, Name: "Sprinter", Health: 18, Speed: 110, Reward: 6, BaseDamage: 1, Radius: 8},
	EnemyTank:  {Kind: EnemyTank, Name: "Juggernaut", Health: 90, Speed: 35, Reward: 12, BaseDamage: 3, Radius: 14},
	EnemySwarm: {Kind: EnemySwarm, Name: "Mite", Health: 10, Speed: 85, Reward: 2, BaseDamage: 1, Radius: 6},
	EnemyBoss:  {Kind: EnemyBoss, Name: "Colossus", Health: 400, Speed: 28, Reward: 60, BaseDamage: 5, Radius: 20},
}
