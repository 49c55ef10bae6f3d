package wire

import (
	"bytes"
	"testing"
)

func TestAssociateResponseRoundTrip(t *testing.T) {
	resp := &AssociateResponse{
		PeerStaAddress: MacAddr{7, 7, 7, 7, 7, 7},
		ResultCode:     AssocResultSuccess,
		AssociationID:  1,
		CapabilityInfo: CapabilityInfo(0).WithPrivacy(true).Raw(),
		Rates:          []SupportedRate{0b11111000, 0b01111010},
	}

	data, err := Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got AssociateResponse
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if got.PeerStaAddress != resp.PeerStaAddress {
		t.Errorf("PeerStaAddress = %v, want %v", got.PeerStaAddress, resp.PeerStaAddress)
	}
	if got.AssociationID != 1 {
		t.Errorf("AssociationID = %d, want 1", got.AssociationID)
	}
	if !CapabilityInfo(got.CapabilityInfo).Privacy() {
		t.Error("privacy bit lost in round trip")
	}
	if len(got.Rates) != 2 || got.Rates[0] != 0b11111000 {
		t.Errorf("Rates = %v, want %v", got.Rates, resp.Rates)
	}
}

func TestDeterministicEncoding(t *testing.T) {
	req := &DeauthenticateRequest{
		PeerStaAddress: MacAddr{1, 2, 3, 4, 5, 6},
		ReasonCode:     ReasonFourwayHandshakeTimeout,
	}

	a, err := Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	b, err := Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("encoding is not deterministic")
	}
}

func TestRefusedAssociateResponseOmitsRates(t *testing.T) {
	resp := &AssociateResponse{
		PeerStaAddress: MacAddr{7, 7, 7, 7, 7, 7},
		ResultCode:     AssocResultRefusedReasonUnspecified,
	}

	data, err := Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got AssociateResponse
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.AssociationID != 0 {
		t.Errorf("AssociationID = %d, want 0", got.AssociationID)
	}
	if len(got.Rates) != 0 {
		t.Errorf("Rates = %v, want empty", got.Rates)
	}
}
