package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Danik911/dublin-accommodation-bot/models"
)

// DefaultPersona returns the built-in sender profile used when no persona
// file is configured.
func DefaultPersona() *models.PersonaProfile {
	return &models.PersonaProfile{
		Age:                 36,
		Occupation:          "Student",
		Course:              "Digital Transformation (Life Science)",
		College:             "Griffith College Dublin",
		Workplace:           "Guinness Storehouse",
		AccommodationPeriod: "3-12 months",
		Lifestyle: models.Lifestyle{
			Smoker:     false,
			Pets:       false,
			EarlyRiser: true,
			Schedule:   "6:30 AM - 10:30 PM",
			Activities: []string{"calisthenics", "running", "hiking"},
		},
		Landmarks: []models.Landmark{
			{Name: "Griffith College Dublin", Lat: 53.3515, Lng: -6.2489},
			{Name: "Guinness Storehouse", Lat: 53.3419, Lng: -6.2867},
		},
	}
}

// LoadPersona reads the sender profile from a YAML file. An empty path
// returns the default persona. Missing landmark entries fall back to the
// default landmark set so the commute analyzer always has destinations.
func LoadPersona(path string) (*models.PersonaProfile, error) {
	if path == "" {
		return DefaultPersona(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona file: %w", err)
	}

	persona := DefaultPersona()
	if err := yaml.Unmarshal(data, persona); err != nil {
		return nil, fmt.Errorf("failed to parse persona file: %w", err)
	}

	if len(persona.Landmarks) == 0 {
		persona.Landmarks = DefaultPersona().Landmarks
	}
	return persona, nil
}
