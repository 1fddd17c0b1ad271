package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/go-password-hasher/hashing"
)

const (
	ConfigFileKey      = "config-file"
	HashLenKey         = "hash-length"
	IterationsKey      = "iterations"
	SaltLenKey         = "salt-length"
	LogLevelKey        = "log-level"
	MetricsTextfileKey = "metrics-textfile"

	envPrefix = "pwhash"
)

var errUnknownLogLevel = errors.New("unknown log level")

// Config is the resolved command configuration.
type Config struct {
	Hashing         hashing.PBKDF2Options
	LogLevel        zapcore.Level
	MetricsTextfile string
}

func addFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "Specify a config file (json, yaml or toml) to read the other options from.")
	fs.Int(HashLenKey, hashing.DefaultHashLen, "Length in bytes of newly created hashes.")
	fs.Int(IterationsKey, hashing.DefaultIterations, "PBKDF2 iteration count for newly created hashes.")
	fs.Int(SaltLenKey, hashing.DefaultSaltLen, "Length in bytes of newly generated salts.")
	fs.String(LogLevelKey, "info", "Specify the log level (debug, info, warn, error).")
	fs.String(MetricsTextfileKey, "", "If set, write Prometheus metrics to this file on exit.")
}

// BuildViper parses args and layers flags, PWHASH_* environment variables and
// an optional config file into a viper instance. The returned flag set holds
// the positional arguments.
func BuildViper(args []string) (*viper.Viper, *pflag.FlagSet, error) {
	fs := pflag.NewFlagSet("pwhash", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	addFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return v, fs, nil
}

// GetConfig extracts and validates the configuration held by v.
func GetConfig(v *viper.Viper) (Config, error) {
	opts := hashing.PBKDF2Options{
		HashLen:    v.GetInt(HashLenKey),
		Iterations: v.GetInt(IterationsKey),
		SaltLen:    v.GetInt(SaltLenKey),
	}
	if _, err := hashing.NewPBKDF2Hasher(opts); err != nil {
		return Config{}, err
	}

	level, err := zapcore.ParseLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %q", errUnknownLogLevel, v.GetString(LogLevelKey))
	}

	return Config{
		Hashing:         opts,
		LogLevel:        level,
		MetricsTextfile: v.GetString(MetricsTextfileKey),
	}, nil
}
