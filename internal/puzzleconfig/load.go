package puzzleconfig

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed defaults/puzzlegen.cfg
var defaultConfig []byte

// Load reads the configuration at path. If path is empty, or the file
// does not exist, the embedded default configuration is used instead; an
// explicit path that fails to read or parse is a hard error.
func Load(path string) (Config, error) {
	if path == "" {
		cfg, err := Parse(defaultConfig)
		if err != nil {
			return Config{}, fmt.Errorf("puzzleconfig: embedded default is malformed: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg, perr := Parse(defaultConfig)
			if perr != nil {
				return Config{}, fmt.Errorf("puzzleconfig: embedded default is malformed: %w", perr)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("puzzleconfig: reading %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("puzzleconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}
