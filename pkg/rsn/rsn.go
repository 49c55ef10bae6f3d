// Package rsn holds the access point's robust-security-network
// configuration: the advertised security parameters and the pre-shared key
// derived from the network passphrase.
//
// RSNE encoding and subset validation are the handshake engine's concern;
// this package only carries the raw parameter bytes and derives the PSK.
package rsn

import (
	"crypto/sha1"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/softap-project/softap-go/pkg/auth"
	"github.com/softap-project/softap-go/pkg/wire"
)

// PSK derivation parameters (IEEE Std 802.11-2016, J.4.1).
const (
	pskIterations = 4096
	pskLength     = 32

	// MinPassphraseLen and MaxPassphraseLen bound a valid WPA2 passphrase.
	MinPassphraseLen = 8
	MaxPassphraseLen = 63
)

// Configuration errors.
var (
	ErrInvalidPassphrase = errors.New("rsn: passphrase must be 8..63 printable ASCII characters")
	ErrEmptySsid         = errors.New("rsn: empty SSID")
)

// Config is the AP-side RSN configuration for one BSS.
type Config struct {
	// Rsne is the RSNE the AP advertises, as raw element bytes.
	Rsne []byte

	// Psk is the 256-bit pre-shared key.
	Psk []byte
}

// NewConfig derives a Config from the BSS SSID and WPA2 passphrase. The
// advertised RSNE bytes are supplied by the caller (the engine owns RSNE
// construction).
func NewConfig(ssid string, passphrase string, rsne []byte) (*Config, error) {
	if len(ssid) == 0 {
		return nil, ErrEmptySsid
	}
	if err := validatePassphrase(passphrase); err != nil {
		return nil, err
	}

	psk := pbkdf2.Key([]byte(passphrase), []byte(ssid), pskIterations, pskLength, sha1.New)
	return &Config{Rsne: rsne, Psk: psk}, nil
}

func validatePassphrase(passphrase string) error {
	if len(passphrase) < MinPassphraseLen || len(passphrase) > MaxPassphraseLen {
		return ErrInvalidPassphrase
	}
	for i := 0; i < len(passphrase); i++ {
		if passphrase[i] < 32 || passphrase[i] > 126 {
			return fmt.Errorf("%w: byte %#x at index %d", ErrInvalidPassphrase, passphrase[i], i)
		}
	}
	return nil
}

// EngineFactory constructs a handshake engine for one client. The factory
// must reject peer parameters that are not a valid subset of the local
// configuration.
type EngineFactory interface {
	// NewAuthenticator builds an engine scoped to the given link. peerRsne
	// holds the security parameters the client supplied in its association
	// request.
	NewAuthenticator(apAddr, clientAddr wire.MacAddr, peerRsne []byte, local *Config) (auth.Authenticator, error)
}
