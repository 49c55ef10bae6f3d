package auth

// UpdateKind tags the variants of an Update.
type UpdateKind uint8

const (
	// UpdateTxFrame asks the host to transmit a key frame to the client.
	UpdateTxFrame UpdateKind = 0

	// UpdateKey hands derived key material to the host for installation.
	UpdateKey UpdateKind = 1

	// UpdateEstablished signals that the security association is complete
	// and the client's controlled port may open.
	UpdateEstablished UpdateKind = 2
)

// String returns the update kind name.
func (k UpdateKind) String() string {
	switch k {
	case UpdateTxFrame:
		return "TX_FRAME"
	case UpdateKey:
		return "KEY"
	case UpdateEstablished:
		return "ESTABLISHED"
	default:
		return "UNKNOWN"
	}
}

// Update is one instruction emitted by the engine. Exactly the fields for
// its kind are set.
type Update struct {
	Kind UpdateKind

	// Frame is set for UpdateTxFrame.
	Frame []byte

	// Key is set for UpdateKey.
	Key *Key
}

// UpdateSink collects the updates produced by one engine call. The state
// machine processes the batch in order after the call returns.
type UpdateSink struct {
	updates []Update
}

// PushFrame appends a transmit-frame update.
func (s *UpdateSink) PushFrame(frame []byte) {
	s.updates = append(s.updates, Update{Kind: UpdateTxFrame, Frame: frame})
}

// PushKey appends a derived-key update.
func (s *UpdateSink) PushKey(key Key) {
	s.updates = append(s.updates, Update{Kind: UpdateKey, Key: &key})
}

// PushEstablished appends the association-established update.
func (s *UpdateSink) PushEstablished() {
	s.updates = append(s.updates, Update{Kind: UpdateEstablished})
}

// Updates returns the collected batch in push order.
func (s *UpdateSink) Updates() []Update {
	return s.updates
}
