package module

import (
	"time"

	"seekdomains/internal/platform/config"
	"seekdomains/internal/services/availability"
)

// Providers
const (
	ProviderNamecheap = "namecheap"
	ProviderWhois     = "whois"
)

// Options controls the availability checker
type Options struct {
	Provider  string
	BatchSize int
	RPS       float64
	Burst     int
	Timeout   time.Duration

	NamecheapUser     string
	NamecheapKey      string
	NamecheapClientIP string
	NamecheapSandbox  bool
	NamecheapEndpoint string
}

// FromConfig reads options using the REGISTRAR_ and NAMECHEAP_ prefixes
func FromConfig(cfg config.Conf) Options {
	reg := cfg.Prefix("REGISTRAR_")
	nc := cfg.Prefix("NAMECHEAP_")
	return Options{
		Provider:  reg.MayEnum("PROVIDER", ProviderNamecheap, ProviderNamecheap, ProviderWhois),
		BatchSize: reg.MayInt("BATCH_SIZE", availability.DefaultBatchSize),
		RPS:       reg.MayFloat64("RPS", 0),
		Burst:     reg.MayInt("BURST", 1),
		Timeout:   reg.MayDuration("TIMEOUT", 30*time.Second),

		NamecheapUser:     nc.MayString("API_USER", ""),
		NamecheapKey:      nc.MayString("API_KEY", ""),
		NamecheapClientIP: nc.MayString("CLIENT_IP", ""),
		NamecheapSandbox:  nc.MayBool("SANDBOX", false),
		NamecheapEndpoint: nc.MayString("ENDPOINT", ""),
	}
}
