package repositories

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/investplus/admin-engine/pkg/models"
)

//go:embed defaults.yaml
var defaultSeedsYAML []byte

// Seeds holds the content served for each collection before its first
// write. The built-in set ships embedded in the binary; deployments can
// substitute their own seed file via the store.seed_file config key.
type Seeds struct {
	Members       []models.Member          `yaml:"members"`
	Projects      []models.Project         `yaml:"projects"`
	Experts       []models.Expert          `yaml:"experts"`
	Investors     []models.Investor        `yaml:"investors"`
	Partners      []models.Partner         `yaml:"partners"`
	Steps         []models.MethodologyStep `yaml:"steps"`
	Achievements  []models.Achievement     `yaml:"achievements"`
	Registrations []models.Registration    `yaml:"registrations"`
	Announcements []models.Announcement    `yaml:"announcements"`
	Notifications []models.Notification    `yaml:"notifications"`
	AdminProfile  models.AdminProfile      `yaml:"adminProfile"`
}

// DefaultSeeds returns the embedded seed data.
func DefaultSeeds() (*Seeds, error) {
	var seeds Seeds
	if err := yaml.Unmarshal(defaultSeedsYAML, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse embedded seed data: %w", err)
	}
	return &seeds, nil
}

// LoadSeeds reads seed data from a YAML file. An empty path returns the
// embedded defaults.
func LoadSeeds(path string) (*Seeds, error) {
	if path == "" {
		return DefaultSeeds()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	var seeds Seeds
	if err := yaml.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &seeds, nil
}
