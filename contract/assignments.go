// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"bytes"
	"errors"

	"github.com/zeebo/blake3"

	"github.com/crisdut/rgb-core/schema"
	"github.com/crisdut/rgb-core/value"
)

// dataConcealTag commits custom-data concealment to a protocol version.
const dataConcealTag = "urn:lnpbp:rgb:data:v01#202302A"

// ErrConfidentialState is returned when revealed state is required but only
// a commitment is available.
var ErrConfidentialState = errors.New("confidential state data where revealed state is required")

// RightAssignment is a declarative owned-right assignment carrying no state.
type RightAssignment struct{}

// ValueAssignment is a single fungible owned-right assignment: either a
// revealed amount with its blinding or a bare Pedersen commitment.
type ValueAssignment struct {
	revealed     *value.Revealed
	confidential *value.Confidential
}

// RevealedValue builds an assignment with a revealed amount.
func RevealedValue(amount uint64, blinding [32]byte) ValueAssignment {
	return ValueAssignment{revealed: &value.Revealed{Value: amount, Blinding: blinding}}
}

// ConfidentialValue builds an assignment carrying only a commitment.
func ConfidentialValue(commitment [32]byte) ValueAssignment {
	return ValueAssignment{confidential: &value.Confidential{Commitment: commitment}}
}

// AsRevealedState returns the revealed amount, if present.
func (a ValueAssignment) AsRevealedState() (value.Revealed, bool) {
	if a.revealed == nil {
		return value.Revealed{}, false
	}
	return *a.revealed, true
}

// ToConfidentialState projects the assignment to its commitment form. A
// revealed assignment is concealed through the deterministic Pedersen
// commitment.
func (a ValueAssignment) ToConfidentialState() value.Confidential {
	if a.revealed != nil {
		return a.revealed.CommitConceal()
	}
	return *a.confidential
}

// DataAssignment is a single custom-data owned-right assignment: either
// revealed bytes or their 32-byte concealment.
type DataAssignment struct {
	revealed     []byte
	confidential *[32]byte
}

// RevealedData builds an assignment with revealed byte data.
func RevealedData(data []byte) DataAssignment {
	return DataAssignment{revealed: data}
}

// ConfidentialData builds an assignment carrying only a data commitment.
func ConfidentialData(commitment [32]byte) DataAssignment {
	return DataAssignment{confidential: &commitment}
}

// AsRevealedState returns the revealed bytes, if present.
func (a DataAssignment) AsRevealedState() ([]byte, bool) {
	if a.confidential != nil {
		return nil, false
	}
	return a.revealed, true
}

// ToConfidentialState projects the assignment to its tagged concealment.
func (a DataAssignment) ToConfidentialState() [32]byte {
	if a.confidential != nil {
		return *a.confidential
	}
	var commitment [32]byte
	blake3.DeriveKey(dataConcealTag, a.revealed, commitment[:])
	return commitment
}

// AssignmentVec is the ordered sequence of assignments of one owned-right
// type. All elements share one state format; the zero value is an empty
// declarative vector.
type AssignmentVec struct {
	format schema.StateFormat
	rights []RightAssignment
	values []ValueAssignment
	data   []DataAssignment
}

// DeclarativeAssignments builds a vector of n void rights.
func DeclarativeAssignments(n int) AssignmentVec {
	return AssignmentVec{format: schema.StateFormatDeclarative, rights: make([]RightAssignment, n)}
}

// FungibleAssignments builds a discrete-finite-field vector.
func FungibleAssignments(values ...ValueAssignment) AssignmentVec {
	return AssignmentVec{format: schema.StateFormatDiscreteFiniteField, values: values}
}

// DataAssignments builds a custom-data vector.
func DataAssignments(items ...DataAssignment) AssignmentVec {
	return AssignmentVec{format: schema.StateFormatCustomData, data: items}
}

// StateFormat returns the variant tag shared by all elements.
func (v AssignmentVec) StateFormat() schema.StateFormat { return v.format }

// Len returns the number of assignments in the vector.
func (v AssignmentVec) Len() int {
	switch v.format {
	case schema.StateFormatDiscreteFiniteField:
		return len(v.values)
	case schema.StateFormatCustomData:
		return len(v.data)
	default:
		return len(v.rights)
	}
}

// Values returns the fungible assignments in order. Empty for non-fungible
// vectors.
func (v AssignmentVec) Values() []ValueAssignment { return v.values }

// Data returns the custom-data assignments in order. Empty for other
// vectors.
func (v AssignmentVec) Data() []DataAssignment { return v.data }

// AsRevealedStateValues returns the revealed amounts in order. Fails with
// ErrConfidentialState if any fungible element is concealed. Vectors without
// value state yield an empty sequence.
func (v AssignmentVec) AsRevealedStateValues() ([]value.Revealed, error) {
	if v.format != schema.StateFormatDiscreteFiniteField {
		return nil, nil
	}
	revealed := make([]value.Revealed, 0, len(v.values))
	for _, a := range v.values {
		r, ok := a.AsRevealedState()
		if !ok {
			return nil, ErrConfidentialState
		}
		revealed = append(revealed, r)
	}
	return revealed, nil
}

// ToConfidentialStatePedersen projects every fungible element to its
// Pedersen commitment, preserving order. Always succeeds; vectors without
// value state yield an empty sequence.
func (v AssignmentVec) ToConfidentialStatePedersen() []value.Confidential {
	if v.format != schema.StateFormatDiscreteFiniteField {
		return nil
	}
	commitments := make([]value.Confidential, 0, len(v.values))
	for _, a := range v.values {
		commitments = append(commitments, a.ToConfidentialState())
	}
	return commitments
}

// StateEquals reports whether two data assignments commit to the same state.
func (a DataAssignment) StateEquals(other DataAssignment) bool {
	ac := a.ToConfidentialState()
	oc := other.ToConfidentialState()
	return bytes.Equal(ac[:], oc[:])
}
