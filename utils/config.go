package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadConfig decodes the JSON file into a copy of base, so fields missing
// from the file keep their defaults.
func ReadConfig[T any](file string, base T) (T, error) {
	bz, err := os.ReadFile(file)
	if err != nil {
		return base, fmt.Errorf("failed to read config file: %w", err)
	}

	config := base
	if err := json.Unmarshal(bz, &config); err != nil {
		return base, fmt.Errorf("failed to decode config file: %w", err)
	}
	return config, nil
}
