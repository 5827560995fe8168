package defs

// UpgradeKind tags one of the permanent tower upgrades. Each upgrade can be
// applied to a given tower at most once.
type UpgradeKind string

const (
	// UpgradeRange permanently scales the tower's range.
	UpgradeRange UpgradeKind = "UPGRADE_RANGE"
	// UpgradeFireRate permanently halves the tower's fire interval.
	UpgradeFireRate UpgradeKind = "UPGRADE_FIRE_RATE"
	// UpgradePierce lets the tower's shots pass through enemies. Restricted
	// to the sniper, whose high-velocity rounds are the only ones that pierce.
	UpgradePierce UpgradeKind = "UPGRADE_PIERCE"
)

// UpgradeDefinition describes the cost and eligibility of one upgrade kind.
type UpgradeDefinition struct {
	Kind UpgradeKind `yaml:"kind"`
	Name string      `yaml:"name"`
	Cost int         `yaml:"cost"`
	// EligibleKinds restricts the upgrade to the listed tower kinds.
	// Empty means any kind may take it.
	EligibleKinds []TowerKind `yaml:"eligible_kinds"`
}

// EligibleFor reports whether the upgrade may be applied to the tower kind.
func (d UpgradeDefinition) EligibleFor(kind TowerKind) bool {
	if len(d.EligibleKinds) == 0 {
		return true
	}
	for _, k := range d.EligibleKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// UpgradeLibrary maps every upgrade kind to its definition.
var UpgradeLibrary = map[UpgradeKind]UpgradeDefinition{
	UpgradeRange:    {Kind: UpgradeRange, Name: "Long Barrels", Cost: 40},
	UpgradeFireRate: {Kind: UpgradeFireRate, Name: "Auto Loader", Cost: 60},
	UpgradePierce:   {Kind: UpgradePierce, Name: "Piercing Rounds", Cost: 80, EligibleKinds: []TowerKind{TowerSniper}},
}
