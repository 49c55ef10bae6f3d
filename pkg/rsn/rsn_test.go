package rsn

import (
	"encoding/hex"
	"errors"
	"testing"
)

func TestNewConfigDerivesPsk(t *testing.T) {
	// Known vector from IEEE Std 802.11-2016, J.4.2.
	cfg, err := NewConfig("IEEE", "password", nil)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	want := "f42c6fc52df0ebef9ebb4b90b38a5f902e83fe1b135a70e23aed762e9710a12e"
	if got := hex.EncodeToString(cfg.Psk); got != want {
		t.Errorf("Psk = %s, want %s", got, want)
	}
}

func TestNewConfigKeepsRsne(t *testing.T) {
	rsne := []byte{0x30, 0x02, 0x01, 0x00}
	cfg, err := NewConfig("coolnet", "password", rsne)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	if len(cfg.Rsne) != 4 || cfg.Rsne[0] != 0x30 {
		t.Errorf("Rsne = %x, want %x", cfg.Rsne, rsne)
	}
}

func TestNewConfigRejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		ssid       string
		passphrase string
		wantErr    error
	}{
		{"empty ssid", "", "password", ErrEmptySsid},
		{"short passphrase", "coolnet", "short", ErrInvalidPassphrase},
		{"long passphrase", "coolnet", string(make([]byte, 64)), ErrInvalidPassphrase},
		{"non-ascii passphrase", "coolnet", "passw\x01rdxx", ErrInvalidPassphrase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.ssid, tt.passphrase, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
