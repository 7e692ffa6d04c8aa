package gajiconfigs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/reusee/gaji/configs"
)

const Schema = `
echo?: bool
max_steps?: int & >=0
log_level?: "debug" | "info" | "warn" | "error"
`

var filenames = []string{
	"gaji.cue",
	".gaji.cue",
}

type Config struct {
	Echo     bool
	MaxSteps int
	LogLevel string
}

// Paths lists existing config files, most specific first: working dir, user config dir, /etc.
func Paths() []string {
	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")
	return existing(dirs)
}

func existing(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func Load(loader configs.Loader) (config Config, err error) {
	for _, field := range []struct {
		path   string
		target any
	}{
		{"echo", &config.Echo},
		{"max_steps", &config.MaxSteps},
		{"log_level", &config.LogLevel},
	} {
		source, err := loader.AssignFirst(field.path, field.target)
		if errors.Is(err, configs.ErrValueNotFound) {
			continue
		}
		if err != nil {
			if source != "" {
				return config, fmt.Errorf("config %s in %s: %w", field.path, source, err)
			}
			return config, fmt.Errorf("load config: %w", err)
		}
	}
	return
}
