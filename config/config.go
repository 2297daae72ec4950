// Package config loads the storefront configuration from yaml files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath     = "."
	defaultSeedPath = "seed/seed.yaml"
	defaultLanguage = "ru"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Seed locates the startup dataset (catalog, promotions, restaurants,
	// initial user state).
	Seed struct {
		Path string `json:"path" yaml:"path"`
	} `json:"seed" yaml:"seed"`

	Pricing *PricingConfig `json:"pricing" yaml:"pricing"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	Language struct {
		Default string `json:"default" yaml:"default"`
	} `json:"language" yaml:"language"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PricingConfig defines the order tariff: flat fees, the free-delivery
// threshold, and the promo/loyalty percentages. Amounts are integer
// currency units.
type PricingConfig struct {
	FreeDeliveryThreshold int `json:"freeDeliveryThreshold" yaml:"freeDeliveryThreshold"`
	DeliveryFee           int `json:"deliveryFee" yaml:"deliveryFee"`
	ServiceFee            int `json:"serviceFee" yaml:"serviceFee"`
	PromoDiscountPercent  int `json:"promoDiscountPercent" yaml:"promoDiscountPercent"`
	LoyaltyAccrualPercent int `json:"loyaltyAccrualPercent" yaml:"loyaltyAccrualPercent"`
}

// CheckoutConfig defines the simulated latencies of the order submission flow.
type CheckoutConfig struct {
	// ProcessingDelay is the simulated payment latency before an order
	// completes.
	ProcessingDelay time.Duration `json:"processingDelay" yaml:"processingDelay"`

	// SuccessReturnDelay is how long the success screen stays up before the
	// storefront returns home on its own.
	SuccessReturnDelay time.Duration `json:"successReturnDelay" yaml:"successReturnDelay"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: CHECKOUT_PROCESSINGDELAY -> checkout.processingDelay
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills in the reference tariff and flow timings for any
// section the yaml file leaves out.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Seed.Path) == "" {
		cfg.Seed.Path = defaultSeedPath
	}
	if strings.TrimSpace(cfg.Language.Default) == "" {
		cfg.Language.Default = defaultLanguage
	}

	if cfg.Pricing == nil {
		cfg.Pricing = &PricingConfig{}
	}
	if cfg.Pricing.FreeDeliveryThreshold == 0 {
		cfg.Pricing.FreeDeliveryThreshold = 1500
	}
	if cfg.Pricing.DeliveryFee == 0 {
		cfg.Pricing.DeliveryFee = 149
	}
	if cfg.Pricing.ServiceFee == 0 {
		cfg.Pricing.ServiceFee = 29
	}
	if cfg.Pricing.PromoDiscountPercent == 0 {
		cfg.Pricing.PromoDiscountPercent = 10
	}
	if cfg.Pricing.LoyaltyAccrualPercent == 0 {
		cfg.Pricing.LoyaltyAccrualPercent = 5
	}

	if cfg.Checkout == nil {
		cfg.Checkout = &CheckoutConfig{}
	}
	if cfg.Checkout.ProcessingDelay == 0 {
		cfg.Checkout.ProcessingDelay = 2500 * time.Millisecond
	}
	if cfg.Checkout.SuccessReturnDelay == 0 {
		cfg.Checkout.SuccessReturnDelay = 5 * time.Second
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
