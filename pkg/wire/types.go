package wire

import (
	"fmt"
	"net"
)

// MacAddr is a 48-bit link-layer station address.
type MacAddr [6]byte

// String returns the address in colon-separated hex form.
func (a MacAddr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", a[0], a[1], a[2], a[3], a[4], a[5])
}

// ParseMacAddr parses a textual link-layer address in any form accepted by
// net.ParseMAC, rejecting addresses that are not 48 bits wide.
func ParseMacAddr(s string) (MacAddr, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return MacAddr{}, err
	}
	if len(hw) != 6 {
		return MacAddr{}, fmt.Errorf("not a 48-bit address: %q", s)
	}
	var a MacAddr
	copy(a[:], hw)
	return a, nil
}

// Aid is an association identifier naming an associated station within a BSS.
// Valid AIDs are 1..AidMax; 0 is reserved and used in refused responses.
type Aid uint16

// AidMax is the largest assignable AID for a single BSS (IEEE Std
// 802.11-2016, 9.4.1.8).
const AidMax Aid = 2007

// SupportedRate is a single entry of a station's supported rate set, in
// units of 500 kb/s with the MSB marking the rate as basic.
type SupportedRate uint8

// Rate returns the data rate in units of 500 kb/s.
func (r SupportedRate) Rate() uint8 {
	return uint8(r) & 0x7f
}

// Basic reports whether the rate is flagged as part of the basic rate set.
func (r SupportedRate) Basic() bool {
	return uint8(r)&0x80 != 0
}

// CapabilityInfo is the 16-bit capability field carried in management
// frames. Only the bits the control plane touches have accessors; all other
// bits pass through untouched.
type CapabilityInfo uint16

const (
	capEss           CapabilityInfo = 1 << 0
	capPrivacy       CapabilityInfo = 1 << 4
	capShortPreamble CapabilityInfo = 1 << 5
)

// Ess reports whether the ESS bit is set.
func (c CapabilityInfo) Ess() bool { return c&capEss != 0 }

// Privacy reports whether the privacy bit is set.
func (c CapabilityInfo) Privacy() bool { return c&capPrivacy != 0 }

// ShortPreamble reports whether the short-preamble bit is set.
func (c CapabilityInfo) ShortPreamble() bool { return c&capShortPreamble != 0 }

// WithEss returns a copy with the ESS bit set to v.
func (c CapabilityInfo) WithEss(v bool) CapabilityInfo { return c.with(capEss, v) }

// WithPrivacy returns a copy with the privacy bit set to v. The AP sets
// privacy in (re)association responses iff data confidentiality is required
// for the BSS (IEEE Std 802.11-2016, 9.4.1.4).
func (c CapabilityInfo) WithPrivacy(v bool) CapabilityInfo { return c.with(capPrivacy, v) }

// WithShortPreamble returns a copy with the short-preamble bit set to v.
func (c CapabilityInfo) WithShortPreamble(v bool) CapabilityInfo { return c.with(capShortPreamble, v) }

func (c CapabilityInfo) with(bit CapabilityInfo, v bool) CapabilityInfo {
	if v {
		return c | bit
	}
	return c &^ bit
}

// Raw returns the capability field as transmitted.
func (c CapabilityInfo) Raw() uint16 { return uint16(c) }
