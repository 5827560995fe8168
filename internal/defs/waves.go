package defs

// SpawnGroup is one homogeneous block of a wave's composition.
type SpawnGroup struct {
	Kind  EnemyKind `yaml:"kind"`
	Count int       `yaml:"count"`
}

// WaveSpec is the resolved composition of a single wave: which enemies spawn,
// in what order, how far apart, and how much their health is scaled.
type WaveSpec struct {
	Number        int
	Groups        []SpawnGroup
	SpawnInterval float64 // seconds between consecutive spawns
	HealthScale   float64 // multiplier applied to base health at spawn
}

// TotalCount returns the number of enemies the wave will spawn.
func (w WaveSpec) TotalCount() int {
	total := 0
	for _, g := range w.Groups {
		total += g.Count
	}
	return total
}

// Waves 1-5 are hand-tuned; later waves come out of the formula in ForWave.
var curatedWaves = map[int]WaveSpec{
	1: {Groups: []SpawnGroup{{EnemyBasic, 8}}, SpawnInterval: 1.0},
	2: {Groups: []SpawnGroup{{EnemyBasic, 10}, {EnemyFast, 4}}, SpawnInterval: 0.9},
	3: {Groups: []SpawnGroup{{EnemyFast, 8}, {EnemyBasic, 8}}, SpawnInterval: 0.85},
	4: {Groups: []SpawnGroup{{EnemyTank, 4}, {EnemyBasic, 10}}, SpawnInterval: 0.8},
	5: {Groups: []SpawnGroup{{EnemyTank, 6}, {EnemyFast, 10}}, SpawnInterval: 0.75},
}

// HealthScale returns the wave-wide health multiplier, 1.0 at wave 1.
func HealthScale(number int) float64 {
	return 1.0 + 0.3*float64(number-1)
}

// ForWave resolves the concrete composition for a wave number. Waves past the
// curated set scale enemy counts with the wave number, add swarm groups on
// multiples of 3 and a boss group every 3 waves past wave 4, and shrink the
// spawn interval down to a floor.
func ForWave(number int) WaveSpec {
	if spec, ok := curatedWaves[number]; ok {
		spec.Number = number
		spec.HealthScale = HealthScale(number)
		return spec
	}

	groups := []SpawnGroup{
		{Kind: EnemyBasic, Count: 8 + 2*number},
		{Kind: EnemyFast, Count: 4 + number},
		{Kind: EnemyTank, Count: number / 2},
	}
	if number%3 == 0 {
		groups = append(groups, SpawnGroup{Kind: EnemySwarm, Count: 3 * number})
	}
	if number > 4 && (number-4)%3 == 0 {
		groups = append(groups, SpawnGroup{Kind: EnemyBoss, Count: (number - 4) / 3})
	}

	interval := 0.8 - 0.02*float64(number-5)
	if interval < 0.25 {
		interval = 0.25
	}

	return WaveSpec{
		Number:        number,
		Groups:        groups,
		SpawnInterval: interval,
		HealthScale:   HealthScale(number),
	}
}
