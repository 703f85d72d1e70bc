package configutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

func splitExt(f string) (string, string) {
	for i := len(f) - 1; i >= 0; i-- {
		if f[i] == '.' {
			return f[0:i], f[i+1:]
		}
	}
	return f, ""
}

// localName turns "dir/config.json5" into "dir/config.local.json5".
func localName(name string) string {
	prefix, ext := splitExt(filepath.Base(name))
	if ext == "" {
		return filepath.Join(filepath.Dir(name), fmt.Sprintf("%s.local", prefix))
	}
	return filepath.Join(filepath.Dir(name), fmt.Sprintf("%s.local.%s", prefix, ext))
}

// mergeFile unmarshals the json5 file at path and merges the non-zero values
// over out, found is false if the file does not exist.
func mergeFile[T any](out *T, path string) (found bool, err error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(contents) == 0 {
		return true, nil
	}

	var parsed T
	err = json5.Unmarshal(contents, &parsed)
	if err != nil {
		return true, fmt.Errorf("parse %s: %w", path, err)
	}
	err = mergo.Merge(out, parsed, mergo.WithOverride)
	if err != nil {
		return true, fmt.Errorf("merge %s: %w", path, err)
	}
	return true, nil
}

// ReadConfig reads a configuration file on top of `defaults`, `name` should come with a
// file extension, it will be used to derive the name of the local override file.
// the following files are merged, where higher number is more prioritized.
// 0. defaults
// 1. <name>.<ext>
// 2. <name>.local.<ext>
//
// os.ErrNotExist is returned (along with the defaults) if neither file exists.
func ReadConfig[T any](name string, defaults T) (T, error) {
	out := defaults

	foundDefault, err := mergeFile(&out, name)
	if err != nil {
		return defaults, err
	}

	local := localName(name)
	foundLocal, err := mergeFile(&out, local)
	if err != nil {
		return defaults, err
	}
	if foundLocal {
		slog.Info("merging config with local overrides", "local", local)
	}

	if !foundDefault && !foundLocal {
		return defaults, os.ErrNotExist
	}
	return out, nil
}

// ReadRecursively is ReadConfig but it goes up the filesystem from the cwd until
// the root to find a configuration file matching the name.
func ReadRecursively[T any](name string, defaults T) (T, error) {
	current, err := os.Getwd()
	if err != nil {
		return defaults, err
	}

	for {
		config, err := ReadConfig(filepath.Join(current, name), defaults)
		if err == nil {
			return config, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return defaults, err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return defaults, os.ErrNotExist
		}
		current = parent
	}
}
