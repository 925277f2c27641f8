package environment

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ParseConfig fills a struct from a TOML config file when
// <PREFIX>_CONFIG_FILE points at one, and from environment variables
// otherwise. Config structs carry both toml and env tags so either source
// can feed them.
func ParseConfig(prefix string, cfg any) error {
	path := os.Getenv(GetEnvKeyPrefix(prefix, "CONFIG_FILE"))
	if path == "" {
		return ParseEnvTags(prefix, cfg)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("decoding config file %s: %w", path, err)
	}

	return nil
}
