package pipeline

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lucasjlepore/trainload"
)

// LoadThresholds reads validator threshold overrides from a TOML file.
// Keys absent from the file keep their defaults; an empty path returns the
// defaults unchanged.
func LoadThresholds(path string) (trainload.Thresholds, error) {
	t := trainload.DefaultThresholds()
	if path == "" {
		return t, nil
	}
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return t, fmt.Errorf("decode thresholds %s: %w", path, err)
	}
	return t, nil
}
