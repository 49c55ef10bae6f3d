package ap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softap-project/softap-go/pkg/wire"
)

func TestParseConfig(t *testing.T) {
	t.Run("protected bss", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
bssid: "02:00:00:00:00:01"
ssid: coolnet
passphrase: "correct horse"
max-clients: 32
`))
		require.NoError(t, err)
		assert.Equal(t, wire.MacAddr{0x02, 0, 0, 0, 0, 0x01}, cfg.BssAddr())
		assert.Equal(t, wire.Aid(32), cfg.Capacity())

		rsnCfg, err := cfg.RsnConfig()
		require.NoError(t, err)
		require.NotNil(t, rsnCfg)
		assert.Equal(t, defaultWpa2Rsne, rsnCfg.Rsne)
		assert.Len(t, rsnCfg.Psk, 32)
	})

	t.Run("open bss", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
bssid: "02:00:00:00:00:01"
ssid: opennet
`))
		require.NoError(t, err)
		assert.Equal(t, wire.AidMax, cfg.Capacity())

		rsnCfg, err := cfg.RsnConfig()
		require.NoError(t, err)
		assert.Nil(t, rsnCfg)
	})

	t.Run("rsne override", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
bssid: "02:00:00:00:00:01"
ssid: coolnet
passphrase: "correct horse"
rsne: "30020100"
`))
		require.NoError(t, err)

		rsnCfg, err := cfg.RsnConfig()
		require.NoError(t, err)
		assert.Equal(t, []byte{0x30, 0x02, 0x01, 0x00}, rsnCfg.Rsne)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		for name, input := range map[string]string{
			"missing ssid":    `{bssid: "02:00:00:00:00:01"}`,
			"bad bssid":       `{bssid: "nope", ssid: x}`,
			"bad rsne hex":    `{bssid: "02:00:00:00:00:01", ssid: x, rsne: "zz"}`,
			"too many aids":   `{bssid: "02:00:00:00:00:01", ssid: x, max-clients: 4000}`,
			"not even yaml":   `: [`,
		} {
			t.Run(name, func(t *testing.T) {
				_, err := ParseConfig([]byte(input))
				assert.Error(t, err)
			})
		}
	})

	t.Run("short passphrase fails psk derivation", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
bssid: "02:00:00:00:00:01"
ssid: coolnet
passphrase: "short"
`))
		require.NoError(t, err)

		_, err = cfg.RsnConfig()
		assert.Error(t, err)
	})
}
