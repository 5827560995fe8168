// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadEnemyDefinitions reads a YAML enemy table and overrides the built-in
// EnemyLibrary entries kind by kind. Kinds absent from the file keep their
// built-in definition.
func LoadEnemyDefinitions(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(raw, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		EnemyLibrary[def.Kind] = def
	}

	log.Printf("loaded %d enemy definitions from %s", len(enemyDefs), path)
	return nil
}

// LoadTowerDefinitions reads a YAML tower table and overrides the built-in
// TowerLibrary entries kind by kind.
func LoadTowerDefinitions(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := yaml.Unmarshal(raw, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	for _, def := range towerDefs {
		TowerLibrary[def.Kind] = def
	}

	log.Printf("loaded %d tower definitions from %s", len(towerDefs), path)
	return nil
}

// LoadUpgradeDefinitions reads a YAML upgrade table and overrides the
// built-in UpgradeLibrary entries kind by kind.
func LoadUpgradeDefinitions(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read upgrade definitions file: %w", err)
	}

	var upgradeDefs []UpgradeDefinition
	if err := yaml.Unmarshal(raw, &upgradeDefs); err != nil {
		return fmt.Errorf("failed to unmarshal upgrade definitions: %w", err)
	}

	for _, def := range upgradeDefs {
		UpgradeLibrary[def.Kind] = def
	}

	log.Printf("loaded %d upgrade definitions from %s", len(upgradeDefs), path)
	return nil
}
