// Package config loads sourcemeta CLI settings.
//
// Values resolve in viper's usual order: explicit flags, SOURCEMETA_*
// environment variables, the config file, then defaults. The config file is
// optional; sourcemeta.yaml (or .toml/.json) in the working directory is
// picked up when present.
//
//	manifest: ./Cargo.toml
//	version: 0.0.1
//	addr: ":8330"
//	crates:
//	  base_url: https://crates.io/api/v1
//	  timeout: 10s
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iamochuko/contract-source-metadata/pkg/integrations"
	"github.com/iamochuko/contract-source-metadata/pkg/integrations/crates"
	"github.com/iamochuko/contract-source-metadata/pkg/manifest"
)

// Keys.
const (
	KeyManifest      = "manifest"
	KeyVersion       = "version"
	KeyAddr          = "addr"
	KeyCratesBaseURL = "crates.base_url"
	KeyCratesTimeout = "crates.timeout"
)

// EnvPrefix is prepended to upper-cased keys: SOURCEMETA_MANIFEST,
// SOURCEMETA_CRATES_BASE_URL, and so on.
const EnvPrefix = "SOURCEMETA"

// DefaultAddr is where serve listens when nothing else is configured.
const DefaultAddr = ":8330"

// Config is the resolved CLI configuration.
type Config struct {
	Manifest string       // Manifest path for link lookups
	Version  string       // Version reported in metadata ("" means build identifier)
	Addr     string       // serve listen address
	Crates   CratesConfig // crates.io client settings
}

// CratesConfig configures the crates.io client.
type CratesConfig struct {
	BaseURL string
	Timeout time.Duration
}

// New returns a viper instance with defaults, env binding, and the
// optional config file wired. file may be empty.
func New(file string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyManifest, manifest.DefaultManifest)
	v.SetDefault(KeyVersion, "")
	v.SetDefault(KeyAddr, DefaultAddr)
	v.SetDefault(KeyCratesBaseURL, crates.DefaultBaseURL)
	v.SetDefault(KeyCratesTimeout, integrations.DefaultTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("sourcemeta")
		v.AddConfigPath(".")
	}
	return v
}

// BindFlags binds each named flag in fs to the key of the same name.
// Flags missing from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the config file if one exists and decodes the result.
// A missing default config file is not an error; a missing explicit file is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		Manifest: v.GetString(KeyManifest),
		Version:  v.GetString(KeyVersion),
		Addr:     v.GetString(KeyAddr),
		Crates: CratesConfig{
			BaseURL: v.GetString(KeyCratesBaseURL),
			Timeout: v.GetDuration(KeyCratesTimeout),
		},
	}, nil
}
