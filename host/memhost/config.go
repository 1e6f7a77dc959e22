// SPDX-License-Identifier: EPL-2.0

package memhost

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const configType = "yaml"

// LoadConfig reads a YAML settings file from fs. An empty path yields an
// empty configuration, so every lookup falls back to its default.
func LoadConfig(fs afero.Fs, path string) (*viper.Viper, error) {
	config := viper.New()
	config.SetFs(fs)

	if path == "" {
		return config, nil
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		ext = configType
	}
	config.SetConfigFile(path)
	config.SetConfigType(ext)

	if err := config.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return config, nil
}
