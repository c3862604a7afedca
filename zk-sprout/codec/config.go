package codec

import (
	"fmt"

	"github.com/kysee/zkcodec/utils"
)

const DefaultMemo = "Default memo"

type Config struct {
	DefaultMemo string `json:"default_memo"`
	// StrictTransmissionAddress rejects a present address that is not 64
	// bytes instead of replacing it with a dummy.
	StrictTransmissionAddress bool   `json:"strict_transmission_address"`
	Hash                      string `json:"hash"`
	LogLevel                  string `json:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		DefaultMemo: DefaultMemo,
		Hash:        utils.HashBlake2b,
		LogLevel:    "info",
	}
}

// LoadConfig reads a JSON config file over DefaultConfig.
func LoadConfig(file string) (Config, error) {
	cfg, err := utils.ReadConfig(file, DefaultConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	if utils.HashFuncByName(cfg.Hash) == nil {
		return fmt.Errorf("unknown hash: %s", cfg.Hash)
	}
	return nil
}
