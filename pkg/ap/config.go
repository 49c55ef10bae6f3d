package ap

import (
	"encoding/hex"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/softap-project/softap-go/pkg/rsn"
	"github.com/softap-project/softap-go/pkg/wire"
)

// defaultWpa2Rsne is the RSN element advertised for a WPA2-PSK BSS:
// CCMP-128 group and pairwise ciphers, PSK AKM, no capabilities.
var defaultWpa2Rsne = []byte{
	0x30, 0x14,
	0x01, 0x00,
	0x00, 0x0f, 0xac, 0x04,
	0x01, 0x00, 0x00, 0x0f, 0xac, 0x04,
	0x01, 0x00, 0x00, 0x0f, 0xac, 0x02,
	0x00, 0x00,
}

// Config is the YAML configuration for one access point. A missing
// passphrase configures an open BSS.
type Config struct {
	// Bssid is the access point's own link-layer address.
	Bssid string `yaml:"bssid"`

	// Ssid names the network.
	Ssid string `yaml:"ssid"`

	// Passphrase is the WPA2 passphrase. Empty for an open BSS.
	Passphrase string `yaml:"passphrase"`

	// Rsne overrides the advertised RSN element, hex encoded. Ignored for
	// an open BSS.
	Rsne string `yaml:"rsne"`

	// MaxClients caps concurrent associations. Zero means no cap beyond
	// the AID space.
	MaxClients int `yaml:"max-clients"`
}

// LoadConfig reads and parses an access point configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses a YAML access point configuration.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Ssid == "" {
		return fmt.Errorf("ssid must not be empty")
	}
	if _, err := wire.ParseMacAddr(c.Bssid); err != nil {
		return fmt.Errorf("bssid: %w", err)
	}
	if c.MaxClients < 0 || c.MaxClients > int(wire.AidMax) {
		return fmt.Errorf("max-clients must be in 0..%d, got %d", wire.AidMax, c.MaxClients)
	}
	if c.Rsne != "" {
		if _, err := hex.DecodeString(c.Rsne); err != nil {
			return fmt.Errorf("rsne: %w", err)
		}
	}
	return nil
}

// BssAddr returns the parsed BSSID.
func (c *Config) BssAddr() wire.MacAddr {
	addr, _ := wire.ParseMacAddr(c.Bssid)
	return addr
}

// Capacity returns the AID pool capacity implied by the config.
func (c *Config) Capacity() wire.Aid {
	if c.MaxClients == 0 {
		return wire.AidMax
	}
	return wire.Aid(c.MaxClients)
}

// RsnConfig derives the BSS's security configuration, nil for an open BSS.
func (c *Config) RsnConfig() (*rsn.Config, error) {
	if c.Passphrase == "" {
		return nil, nil
	}
	rsne := defaultWpa2Rsne
	if c.Rsne != "" {
		decoded, err := hex.DecodeString(c.Rsne)
		if err != nil {
			return nil, fmt.Errorf("rsne: %w", err)
		}
		rsne = decoded
	}
	return rsn.NewConfig(c.Ssid, c.Passphrase, rsne)
}
