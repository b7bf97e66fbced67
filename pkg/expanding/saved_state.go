package expanding

import (
	"gopkg.in/yaml.v3"

	"github.com/go-drift/expanding/pkg/errors"
)

// SavedState is the persisted form of an expanding host.
type SavedState struct {
	// ExpansionFraction is the fraction in internal units, rounded up.
	// Nil when absent; restoring then keeps the current fraction.
	ExpansionFraction *float64 `yaml:"expansion_fraction,omitempty"`
	// Parent is the host's own state, opaque to the controller. A zero
	// Kind means absent.
	Parent yaml.Node `yaml:"parent,omitempty"`
}

// EncodeState serializes s as YAML.
func EncodeState(s SavedState) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, &errors.ExpandError{Op: "expanding.EncodeState", Kind: errors.KindDecode, Err: err}
	}
	return data, nil
}

// DecodeState parses a blob produced by EncodeState. An empty blob decodes
// to a zero SavedState.
func DecodeState(data []byte) (SavedState, error) {
	var s SavedState
	if err := yaml.Unmarshal(data, &s); err != nil {
		return SavedState{}, &errors.ExpandError{Op: "expanding.DecodeState", Kind: errors.KindDecode, Err: err}
	}
	return s, nil
}

// SaveState captures c and the host's parent state. parent may be nil.
func SaveState(c *Controller, parent any) ([]byte, error) {
	fraction := c.Save()
	s := SavedState{ExpansionFraction: &fraction}
	if parent != nil {
		var node yaml.Node
		if err := node.Encode(parent); err != nil {
			return nil, &errors.ExpandError{Op: "expanding.SaveState", Kind: errors.KindDecode, Err: err}
		}
		s.Parent = node
	}
	return EncodeState(s)
}

// RestoreState applies a blob from SaveState: the fraction first, directly
// and without animation, then the parent state into parent (if both are
// present). Nothing is applied when the blob does not decode.
func RestoreState(c *Controller, data []byte, parent any) error {
	s, err := DecodeState(data)
	if err != nil {
		return err
	}
	if s.ExpansionFraction != nil {
		c.Restore(*s.ExpansionFraction)
	}
	if s.Parent.Kind != 0 && parent != nil {
		if err := s.Parent.Decode(parent); err != nil {
			return &errors.ExpandError{Op: "expanding.RestoreState", Kind: errors.KindDecode, Err: err}
		}
	}
	return nil
}
