package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const manifestFileName = "run.json"

// Manifest records one run's identity and outputs, persisted next to the
// chart artifacts.
type Manifest struct {
	RunID     string    `json:"run_id"`
	Input     string    `json:"input"`
	CreatedAt time.Time `json:"created_at"`
	Rows      int       `json:"rows"`
	Artifacts []string  `json:"artifacts"`
}

// WriteManifest writes run.json into dir and returns the new run id.
func WriteManifest(dir string, s *Summary) (string, error) {
	m := Manifest{
		RunID:     uuid.NewString(),
		Input:     s.Input,
		CreatedAt: time.Now(),
		Rows:      s.Rows,
		Artifacts: s.Artifacts,
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifestFileName), b, 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return m.RunID, nil
}

// LoadManifest reads a previously written run.json from dir.
func LoadManifest(dir string) (*Manifest, error) {
	b, err := os.ReadFile(filepath.Join(dir, manifestFileName))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}
