package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"pricing": map[string]any{
			"deliveryFee": 149,
			"freeDeliveryThreshold": 1500,
		},
		"checkout": map[string]any{
			"processingDelay": "2500ms",
		},
		"seed": map[string]any{
			"path": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PRICING_DELIVERYFEE", want: "pricing.deliveryFee"},
		{envKey: "PRICING_FREEDELIVERYTHRESHOLD", want: "pricing.freeDeliveryThreshold"},
		{envKey: "CHECKOUT_PROCESSINGDELAY", want: "checkout.processingDelay"},
		{envKey: "SEED_PATH", want: "seed.path"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsReferenceTariff(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Pricing.FreeDeliveryThreshold != 1500 {
		t.Fatalf("threshold = %d, want 1500", cfg.Pricing.FreeDeliveryThreshold)
	}
	if cfg.Pricing.DeliveryFee != 149 || cfg.Pricing.ServiceFee != 29 {
		t.Fatalf("fees = %d/%d, want 149/29", cfg.Pricing.DeliveryFee, cfg.Pricing.ServiceFee)
	}
	if cfg.Checkout.ProcessingDelay.Milliseconds() != 2500 {
		t.Fatalf("processingDelay = %v, want 2.5s", cfg.Checkout.ProcessingDelay)
	}
	if cfg.Checkout.SuccessReturnDelay.Seconds() != 5 {
		t.Fatalf("successReturnDelay = %v, want 5s", cfg.Checkout.SuccessReturnDelay)
	}
	if cfg.Language.Default != "ru" {
		t.Fatalf("language = %q, want ru", cfg.Language.Default)
	}
}
