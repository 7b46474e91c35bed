// Package config loads the game configuration shared by the world,
// its NPCs and every Cubot.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/cubot/translate"
)

var f = translate.From

var (
	ErrWorldSize    = errors.New(f("world_size must be positive"))
	ErrNpcCount     = errors.New(f("factory_max_npc_count must be positive"))
	ErrNpcLifetime  = errors.New(f("npc_lifetime must not be less than factory_max_npc_count"))
	ErrEnergy       = errors.New(f("cubot_max_energy must not be negative"))
	ErrMemorySize   = errors.New(f("cubot_memory_size must be within 1..65536"))
	ErrInstructions = errors.New(f("cpu_instructions_per_tick must be positive"))
	ErrRadio        = errors.New(f("radio settings must be positive"))
)

// Config is the game configuration.
type Config struct {
	WorldSize              int `yaml:"world_size"`
	FactoryMaxNpcCount     int `yaml:"factory_max_npc_count"`
	NpcLifetime            int `yaml:"npc_lifetime"`
	CubotMaxEnergy         int `yaml:"cubot_max_energy"`
	CubotMemorySize        int `yaml:"cubot_memory_size"`
	CpuInstructionsPerTick int `yaml:"cpu_instructions_per_tick"`
	RadioRange             int `yaml:"radio_range"`
	RadioMaxMessages       int `yaml:"radio_max_messages"`
	RadioMessageLength     int `yaml:"radio_message_length"`
}

// Default returns the stock game configuration.
func Default() *Config {
	return &Config{
		WorldSize:              16,
		FactoryMaxNpcCount:     16,
		NpcLifetime:            1024,
		CubotMaxEnergy:         4000,
		CubotMemorySize:        65536,
		CpuInstructionsPerTick: 10000,
		RadioRange:             3,
		RadioMaxMessages:       16,
		RadioMessageLength:     8,
	}
}

// Load reads a YAML configuration file. Keys left out keep their
// default values; unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes a YAML configuration document on top of Default().
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the simulation cannot run with.
func (cfg *Config) Validate() error {
	switch {
	case cfg.WorldSize <= 0:
		return ErrWorldSize
	case cfg.FactoryMaxNpcCount <= 0:
		return ErrNpcCount
	case cfg.NpcLifetime < cfg.FactoryMaxNpcCount:
		return ErrNpcLifetime
	case cfg.CubotMaxEnergy < 0:
		return ErrEnergy
	case cfg.CubotMemorySize <= 0 || cfg.CubotMemorySize > 65536:
		return ErrMemorySize
	case cfg.CpuInstructionsPerTick <= 0:
		return ErrInstructions
	case cfg.RadioRange <= 0 || cfg.RadioMaxMessages <= 0 || cfg.RadioMessageLength <= 0:
		return ErrRadio
	}

	return nil
}

// NpcCreationCooldown is the number of ticks a Factory waits between spawns.
func (cfg *Config) NpcCreationCooldown() int {
	return cfg.NpcLifetime / cfg.FactoryMaxNpcCount
}
