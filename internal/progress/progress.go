// internal/progress/progress.go
package progress

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Records are the cross-run player bests. They are global, not per match.
type Records struct {
	BestScore int `yaml:"bestScore"`
	BestWave  int `yaml:"bestWave"`
}

// Storage keys inside the gdata container.
const (
	recordsObject   = "progress"
	recordsProperty = "records"
)

// Manager loads and saves Records through gdata. A nil gdata manager puts
// it in degraded mode: records live in memory only and vanish on exit.
type Manager struct {
	gdataManager *gdata.Manager
	records      Records
}

// NewManager creates a manager and loads any previously saved records.
// A load failure is not fatal; it just starts from zero.
func NewManager(gdataManager *gdata.Manager) *Manager {
	m := &Manager{gdataManager: gdataManager}
	if err := m.Load(); err != nil {
		log.Printf("progress: failed to load records: %v (starting fresh)", err)
	}
	return m
}

// Load reads records from storage, if present.
func (m *Manager) Load() error {
	if m.gdataManager == nil {
		return nil
	}
	if !m.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}
	data, err := m.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load progress records: %w", err)
	}
	var records Records
	if err := yaml.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to unmarshal progress records: %w", err)
	}
	m.records = records
	return nil
}

// Save writes the current records to storage.
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(&m.records)
	if err != nil {
		return fmt.Errorf("failed to marshal progress records: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save progress records: %w", err)
	}
	return nil
}

// Record folds a finished match into the records and persists them when
// either best improved. Returns true if a record was broken.
func (m *Manager) Record(score, wave int) bool {
	improved := false
	if score > m.records.BestScore {
		m.records.BestScore = score
		improved = true
	}
	if wave > m.records.BestWave {
		m.records.BestWave = wave
		improved = true
	}
	if improved {
		if err := m.Save(); err != nil {
			log.Printf("progress: failed to save records: %v", err)
		}
	}
	return improved
}

// Best returns the current records.
func (m *Manager) Best() Records {
	return m.records
}
