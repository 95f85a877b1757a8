package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/viper"
)

// Config is read from an optional bankbot.yaml in the working directory and
// from BANKBOT_* environment variables.
type Config struct {
	Port       string
	Phrasebook string
	Seed       int64
}

func loadConfig() Config {
	v := viper.New()
	v.SetDefault("port", "8060")
	v.SetDefault("phrasebook", "")
	v.SetDefault("seed", int64(0))

	v.SetEnvPrefix("BANKBOT")
	v.AutomaticEnv()

	v.SetConfigName("bankbot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // config file is optional

	return Config{
		Port:       v.GetString("port"),
		Phrasebook: v.GetString("phrasebook"),
		Seed:       v.GetInt64("seed"),
	}
}

// buildStack wires the phrasebook, ledger and engine from one config. A zero
// seed picks a time-based one; any other value makes every random output
// (greeting variant, card pick, generated ids) reproducible.
func buildStack(cfg Config) (*Engine, *Phrasebook, Ledger, error) {
	phrases, err := NewPhrasebook(cfg.Phrasebook)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load phrasebook: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ledger := NewMemoryLedger(rand.New(rand.NewSource(seed)))
	engine := NewEngine(ledger, phrases, rand.New(rand.NewSource(seed+1)))
	return engine, phrases, ledger, nil
}
