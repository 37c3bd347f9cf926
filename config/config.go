package config

import (
	"os"
	"path"

	"github.com/nan01ab/neo/common/utils"
	"github.com/naoina/toml"
)

// Common holds the process-wide identity and logging-tier settings.
type Common struct {
	Level       string // set by logger.InitLogger: "alpha" with -debug, else "prod"
	ServiceName string
	Port        int
}

// LogInfo configures the rotating file sink package logger wraps around
// zap.
type LogInfo struct {
	Path       string
	MaxAgeHour int
	RotateHour int
}

// DB configures the leveldb-backed collaborator caches in package storage.
type DB struct {
	Path string
}

// Wallet configures where the local signer keystore lives on disk.
type Wallet struct {
	Path string
}

// Fee carries the per-attribute fee constants for Conflicts and
// NotaryAssisted, plus the feature flags gating NotaryAssisted and the
// shared bound on how many keys it may declare.
type Fee struct {
	ConflictsBaseFee    uint64 `toml:"conflictsBaseFee"`
	NotaryServiceFee    uint64 `toml:"notaryServiceFee"`
	NotaryActive        bool   `toml:"notaryActive"`
	NotaryAssistedLimit int    `toml:"notaryAssistedLimit"`
}

// Config is the root decoded from config.toml.
type Config struct {
	Common  Common
	LogInfo LogInfo
	DB      DB
	Wallet  Wallet
	Fee     Fee
}

// NewConfig loads and decodes filepath, or config/config.toml under the
// project root if filepath is empty.
func NewConfig(filepath string) (*Config, error) {
	if filepath == "" {
		workDir, _ := os.Getwd()
		rootDir := utils.FindProjectRoot(workDir)
		filepath = path.Join(rootDir, "config", "config.toml")
	}

	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	c := new(Config)
	if err := toml.NewDecoder(file).Decode(c); err != nil {
		return nil, err
	}
	c.sanitize()
	return c, nil
}

func (p *Config) sanitize() {
	if len(p.LogInfo.Path) > 0 && p.LogInfo.Path[0] == byte('~') {
		p.LogInfo.Path = path.Join(utils.HomeDir(), p.LogInfo.Path[1:])
	}
}

// GetConfig returns p, for call sites that hold an interface over *Config.
func (p *Config) GetConfig() *Config {
	return p
}

// GetLogInfoConfig returns the logging section.
func (p *Config) GetLogInfoConfig() *LogInfo {
	return &p.LogInfo
}
