// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"io"

	"github.com/crisdut/rgb-core/schema"
)

// Embedded procedure identifiers. Three disjoint families, each decoded
// totally from a 32-bit entry point. The numeric assignments are fixed by
// the protocol and must never be reassigned.

// AssignmentValidator identifies an embedded procedure validating the
// assignments of a single owned-right type.
type AssignmentValidator uint32

const (
	// FungibleNoInflation checks that the sum of Pedersen commitments in
	// the inputs of a right type equals the sum over the outputs of the
	// same type, preventing non-inflationary transfers from creating or
	// destroying value.
	FungibleNoInflation AssignmentValidator = 0x01

	// NoOverflow checks that multiple rights assigning additive state do
	// not exceed the maximum allowed bit dimensionality.
	NoOverflow AssignmentValidator = 0x02
)

func (v AssignmentValidator) String() string {
	switch v {
	case FungibleNoInflation:
		return "fungible-no-inflation"
	case NoOverflow:
		return "no-overflow"
	default:
		return "unknown"
	}
}

// AssignmentValidatorFromEntryPoint decodes an assignment validator from an
// entry point value, reporting false when the value does not correspond to
// any embedded procedure.
func AssignmentValidatorFromEntryPoint(ep schema.EntryPoint) (AssignmentValidator, bool) {
	switch v := AssignmentValidator(ep); v {
	case FungibleNoInflation, NoOverflow:
		return v, true
	default:
		return 0, false
	}
}

// NodeValidator identifies an embedded procedure validating a whole contract
// node.
type NodeValidator uint32

const (
	// FungibleIssue controls fungible asset inflation: the issue must not
	// produce more than allowed by the spent inflation rights, and the
	// assigned amounts must equal the issued supply declared in metadata.
	FungibleIssue NodeValidator = 0x02

	// IdentityTransfer controls NFT/identity transfers: every identity is
	// transferred once and only once.
	IdentityTransfer NodeValidator = 0x11

	// NftIssue controls NFT secondary issue against the spent inflation
	// rights.
	NftIssue NodeValidator = 0x12

	// ProofOfBurn verifies proofs of burn.
	ProofOfBurn NodeValidator = 0x20

	// ProofOfReserve verifies proofs of reserve.
	ProofOfReserve NodeValidator = 0x21

	// RightsSplit controls splitting of rights assigned to one UTXO:
	// the state must be preserved per type and per position.
	RightsSplit NodeValidator = 0x30
)

func (v NodeValidator) String() string {
	switch v {
	case FungibleIssue:
		return "fungible-issue"
	case IdentityTransfer:
		return "nft-transfer"
	case NftIssue:
		return "nft-issue"
	case ProofOfBurn:
		return "proof-of-burn"
	case ProofOfReserve:
		return "proof-of-reserve"
	case RightsSplit:
		return "rights-split"
	default:
		return "unknown"
	}
}

// NodeValidatorFromEntryPoint decodes a node validator from an entry point
// value, reporting false when the value does not correspond to any embedded
// procedure.
func NodeValidatorFromEntryPoint(ep schema.EntryPoint) (NodeValidator, bool) {
	switch v := NodeValidator(ep); v {
	case FungibleIssue, IdentityTransfer, NftIssue, ProofOfBurn, ProofOfReserve, RightsSplit:
		return v, true
	default:
		return 0, false
	}
}

// TransitionConstructor identifies an embedded procedure generating blank
// state transitions.
type TransitionConstructor uint32

const (
	// OneToOne generates a blank transition transferring all rights from
	// each single UTXO to another UTXO, one-to-one.
	OneToOne TransitionConstructor = 0x80

	// Aggregate generates a transition coalescing all rights from all
	// UTXOs into a single output assigned to one destination UTXO.
	Aggregate TransitionConstructor = 0x81
)

func (v TransitionConstructor) String() string {
	switch v {
	case OneToOne:
		return "one-to-one"
	case Aggregate:
		return "aggregate"
	default:
		return "unknown"
	}
}

// TransitionConstructorFromEntryPoint decodes a transition constructor from
// an entry point value, reporting false when the value does not correspond
// to any embedded procedure.
func TransitionConstructorFromEntryPoint(ep schema.EntryPoint) (TransitionConstructor, bool) {
	switch v := TransitionConstructor(ep); v {
	case OneToOne, Aggregate:
		return v, true
	default:
		return 0, false
	}
}

// Wire codec: persisted schemata encode each procedure id as a little-endian
// 32-bit unsigned integer. Decoding an unknown id aborts schema acceptance
// with a data integrity error.

func readEntryPoint(r io.Reader) (schema.EntryPoint, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return schema.EntryPointFromBytes(b), nil
}

func writeEntryPoint(w io.Writer, ep schema.EntryPoint) error {
	b := ep.Bytes()
	_, err := w.Write(b[:])
	return err
}

// DecodeAssignmentValidator reads an assignment validator from its wire
// form.
func DecodeAssignmentValidator(r io.Reader) (AssignmentValidator, error) {
	ep, err := readEntryPoint(r)
	if err != nil {
		return 0, err
	}
	v, ok := AssignmentValidatorFromEntryPoint(ep)
	if !ok {
		return 0, errUnknownEntryPoint(uint32(ep))
	}
	return v, nil
}

// DecodeNodeValidator reads a node validator from its wire form.
func DecodeNodeValidator(r io.Reader) (NodeValidator, error) {
	ep, err := readEntryPoint(r)
	if err != nil {
		return 0, err
	}
	v, ok := NodeValidatorFromEntryPoint(ep)
	if !ok {
		return 0, errUnknownEntryPoint(uint32(ep))
	}
	return v, nil
}

// DecodeTransitionConstructor reads a transition constructor from its wire
// form.
func DecodeTransitionConstructor(r io.Reader) (TransitionConstructor, error) {
	ep, err := readEntryPoint(r)
	if err != nil {
		return 0, err
	}
	v, ok := TransitionConstructorFromEntryPoint(ep)
	if !ok {
		return 0, errUnknownEntryPoint(uint32(ep))
	}
	return v, nil
}

// EncodeAssignmentValidator writes the wire form of an assignment validator.
func EncodeAssignmentValidator(w io.Writer, v AssignmentValidator) error {
	return writeEntryPoint(w, schema.EntryPoint(v))
}

// EncodeNodeValidator writes the wire form of a node validator.
func EncodeNodeValidator(w io.Writer, v NodeValidator) error {
	return writeEntryPoint(w, schema.EntryPoint(v))
}

// EncodeTransitionConstructor writes the wire form of a transition
// constructor.
func EncodeTransitionConstructor(w io.Writer, v TransitionConstructor) error {
	return writeEntryPoint(w, schema.EntryPoint(v))
}
