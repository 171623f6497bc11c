// Package config loads the YAML configuration of the txflow command.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	txflow "github.com/tarantool/go-txflow"
	"github.com/tarantool/go-txflow/decoder"
	"github.com/tarantool/go-txflow/faucet"
	"github.com/tarantool/go-txflow/marshaller"
	"github.com/tarantool/go-txflow/provider/tcs"
	"github.com/tarantool/go-txflow/waiter"
)

// DefaultJournalPrefix is the etcd prefix of retained handles.
const DefaultJournalPrefix = "/txflow"

var (
	// ErrInvalid matches every ValidationError.
	ErrInvalid = errors.New("invalid configuration")
	// ErrNoAddresses is returned when no tarantool instance is configured.
	ErrNoAddresses = errors.New("no tarantool addresses")
	// ErrNegativeDuration is returned for negative intervals and timeouts.
	ErrNegativeDuration = errors.New("duration is negative")
	// ErrNegativeFee is returned for negative fees.
	ErrNegativeFee = errors.New("fee is negative")
)

// ValidationError reports the configuration field that failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalid, e.Field, e.Err)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// Is makes ValidationError match ErrInvalid.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalid //nolint:errorlint
}

// Tarantool describes the wallet instances.
type Tarantool struct {
	Addrs       []string        `yaml:"addrs"`
	Credentials tcs.Credentials `yaml:",inline"`
	Procedures  tcs.Procedures  `yaml:"procedures"`
}

// Waiter describes the polling of submitted transactions.
type Waiter struct {
	PollInterval    time.Duration `yaml:"poll_interval"`
	Timeout         time.Duration `yaml:"timeout"`
	MaxStatusErrors int           `yaml:"max_status_errors"`
}

// Faucet describes the faucet deployment.
type Faucet struct {
	Template     string `yaml:"template"`
	Supply       string `yaml:"supply"`
	Fee          int64  `yaml:"fee"`
	FirstSymbol  string `yaml:"first_symbol"`
	SecondSymbol string `yaml:"second_symbol"`
	// LayoutFile is a YAML layout replacing decoder.MintPairV1.
	LayoutFile string `yaml:"layout_file"`
}

// Journal describes where retained handles are kept.
// Without endpoints they are kept in memory.
type Journal struct {
	Endpoints []string `yaml:"endpoints"`
	Prefix    string   `yaml:"prefix"`
}

// Config is the command configuration.
type Config struct {
	Tarantool Tarantool `yaml:"tarantool"`
	Waiter    Waiter    `yaml:"waiter"`
	Faucet    Faucet    `yaml:"faucet"`
	Journal   Journal   `yaml:"journal"`
}

// Default returns the configuration used for absent fields.
func Default() Config {
	defaults := faucet.DefaultConfig()

	return Config{
		Tarantool: Tarantool{
			Addrs:       []string{"127.0.0.1:3301"},
			Credentials: tcs.Credentials{User: "guest", Password: ""},
			Procedures:  tcs.DefaultProcedures(),
		},
		Waiter: Waiter{
			PollInterval:    waiter.DefaultPollInterval,
			Timeout:         waiter.DefaultTimeout,
			MaxStatusErrors: waiter.DefaultMaxStatusErrors,
		},
		Faucet: Faucet{
			Template:     defaults.TemplateAddress,
			Supply:       defaults.InitialSupply,
			Fee:          txflow.DefaultFeeAmount,
			FirstSymbol:  defaults.FirstSymbol,
			SecondSymbol: defaults.SecondSymbol,
			LayoutFile:   "",
		},
		Journal: Journal{
			Endpoints: nil,
			Prefix:    DefaultJournalPrefix,
		},
	}
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg, err := marshaller.NewTypedYamlMarshaller[Config]().UnmarshalOver(Default(), data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads the file at path. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the fields that would otherwise fail late.
func (c Config) Validate() error {
	switch {
	case len(c.Tarantool.Addrs) == 0:
		return ValidationError{Field: "tarantool.addrs", Err: ErrNoAddresses}
	case c.Waiter.PollInterval < 0:
		return ValidationError{Field: "waiter.poll_interval", Err: ErrNegativeDuration}
	case c.Waiter.Timeout < 0:
		return ValidationError{Field: "waiter.timeout", Err: ErrNegativeDuration}
	case c.Faucet.Fee < 0:
		return ValidationError{Field: "faucet.fee", Err: ErrNegativeFee}
	}

	return nil
}

// WaiterOptions returns the waiter options described by the configuration.
func (c Config) WaiterOptions() []waiter.Option {
	return []waiter.Option{
		waiter.WithPollInterval(c.Waiter.PollInterval),
		waiter.WithTimeout(c.Waiter.Timeout),
		waiter.WithMaxStatusErrors(c.Waiter.MaxStatusErrors),
	}
}

// FaucetConfig builds the faucet configuration, loading the layout file if set.
func (c Config) FaucetConfig() (faucet.Config, error) {
	cfg := faucet.Config{
		TemplateAddress: c.Faucet.Template,
		InitialSupply:   c.Faucet.Supply,
		FirstSymbol:     c.Faucet.FirstSymbol,
		SecondSymbol:    c.Faucet.SecondSymbol,
		Layout:          decoder.MintPairV1,
	}

	if c.Faucet.LayoutFile != "" {
		data, err := os.ReadFile(c.Faucet.LayoutFile)
		if err != nil {
			return faucet.Config{}, fmt.Errorf("failed to read layout %s: %w", c.Faucet.LayoutFile, err)
		}

		cfg.Layout, err = decoder.LoadLayout(data)
		if err != nil {
			return faucet.Config{}, fmt.Errorf("%s: %w", c.Faucet.LayoutFile, err)
		}
	}

	err := cfg.Validate()
	if err != nil {
		return faucet.Config{}, ValidationError{Field: "faucet", Err: err}
	}

	return cfg, nil
}
