// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package schema defines the declarative contract template for
// client-side-validated smart contracts: the allowed field types, owned- and
// public-right types, node types, and the validation script with its
// per-action entry point tables.
//
// Structural verification of schemata (occurrence bounds, type system
// consistency) happens in a separate phase before any schema object reaches
// the validation VM; this package only carries the data.
package schema

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"sort"

	"github.com/zeebo/blake3"
)

type (
	// FieldType is a type id from the schema's metadata field table.
	FieldType = uint16
	// OwnedRightType is a type id from the schema's owned-right table.
	OwnedRightType = uint16
	// PublicRightType is a type id from the schema's public-right table.
	PublicRightType = uint16
	// TransitionType is a type id from the schema's state-transition table.
	TransitionType = uint16
	// ExtensionType is a type id from the schema's state-extension table.
	ExtensionType = uint16
)

// SemId references a data type in the schema's type system.
type SemId [32]byte

// schemaIdTag commits the schema id derivation to a specific protocol
// version. Protocol-stable; changing it changes every schema id.
const schemaIdTag = "urn:lnpbp:rgb:schema:v01#202302A"

// SchemaId is a 32-byte tagged commitment to all of the schema data.
type SchemaId [32]byte

func (id SchemaId) String() string { return hex.EncodeToString(id[:]) }

// StateFormat is the tag shared by all assignments within one owned-right
// type: rights without attached state, discrete-finite-field amounts, or
// custom byte data.
type StateFormat uint8

const (
	StateFormatDeclarative StateFormat = iota
	StateFormatDiscreteFiniteField
	StateFormatCustomData
)

func (f StateFormat) String() string {
	switch f {
	case StateFormatDeclarative:
		return "declarative"
	case StateFormatDiscreteFiniteField:
		return "discrete-finite-field"
	case StateFormatCustomData:
		return "custom-data"
	default:
		return "unknown"
	}
}

// NodeKind enumerates the three node kinds of a contract DAG.
type NodeKind uint8

const (
	NodeKindGenesis NodeKind = iota
	NodeKindStateTransition
	NodeKindStateExtension
)

// NodeSubtype identifies a node kind together with its schema-declared type
// tag. Genesis nodes carry no tag.
type NodeSubtype struct {
	kind NodeKind
	ty   uint16
}

// SubtypeGenesis returns the subtype of the single genesis node.
func SubtypeGenesis() NodeSubtype { return NodeSubtype{kind: NodeKindGenesis} }

// SubtypeStateTransition returns the subtype of a state transition with the
// given transition type tag.
func SubtypeStateTransition(t TransitionType) NodeSubtype {
	return NodeSubtype{kind: NodeKindStateTransition, ty: t}
}

// SubtypeStateExtension returns the subtype of a state extension with the
// given extension type tag.
func SubtypeStateExtension(t ExtensionType) NodeSubtype {
	return NodeSubtype{kind: NodeKindStateExtension, ty: t}
}

func (n NodeSubtype) Kind() NodeKind { return n.kind }

// TransitionType returns the transition type tag, if the node is a state
// transition.
func (n NodeSubtype) TransitionType() (TransitionType, bool) {
	return n.ty, n.kind == NodeKindStateTransition
}

// ExtensionType returns the extension type tag, if the node is a state
// extension.
func (n NodeSubtype) ExtensionType() (ExtensionType, bool) {
	return n.ty, n.kind == NodeKindStateExtension
}

// StateSchema declares the state format of one owned-right type and the
// entry point table for its assignment-level validation.
type StateSchema struct {
	Format StateFormat
	Abi    AssignmentAbi
}

// GenesisSchema declares the validation entry points of the genesis node.
type GenesisSchema struct {
	Abi GenesisAbi
}

// ExtensionSchema declares the validation entry points of one state
// extension type.
type ExtensionSchema struct {
	Abi ExtensionAbi
}

// TransitionSchema declares the validation entry points of one state
// transition type.
type TransitionSchema struct {
	Abi TransitionAbi
}

// Schema is the declarative contract template. A schema is constructed once,
// frozen, and referenced by every contract node validated under it.
type Schema struct {
	SubsetOf *SchemaId

	FieldTypes       map[FieldType]SemId
	OwnedRightTypes  map[OwnedRightType]StateSchema
	PublicRightTypes map[PublicRightType]struct{}
	Genesis          GenesisSchema
	Extensions       map[ExtensionType]ExtensionSchema
	Transitions      map[TransitionType]TransitionSchema

	Script ValidationScript
}

// SchemaId computes the tagged commitment to all of the schema data.
func (s *Schema) SchemaId() SchemaId {
	var id SchemaId
	blake3.DeriveKey(schemaIdTag, s.serialize(), id[:])
	return id
}

// serialize produces the canonical binary form the schema id commits to:
// little-endian integers, maps in ascending key order.
func (s *Schema) serialize() []byte {
	var buf bytes.Buffer

	if s.SubsetOf != nil {
		buf.WriteByte(1)
		buf.Write(s.SubsetOf[:])
	} else {
		buf.WriteByte(0)
	}

	for _, ft := range sortedKeys(s.FieldTypes) {
		writeU16(&buf, ft)
		sem := s.FieldTypes[ft]
		buf.Write(sem[:])
	}
	for _, rt := range sortedKeys(s.OwnedRightTypes) {
		writeU16(&buf, rt)
		state := s.OwnedRightTypes[rt]
		buf.WriteByte(byte(state.Format))
		serializeAbi(&buf, state.Abi)
	}
	for _, pt := range sortedKeys(s.PublicRightTypes) {
		writeU16(&buf, pt)
	}
	serializeAbi(&buf, s.Genesis.Abi)
	for _, et := range sortedKeys(s.Extensions) {
		writeU16(&buf, et)
		serializeAbi(&buf, s.Extensions[et].Abi)
	}
	for _, tt := range sortedKeys(s.Transitions) {
		writeU16(&buf, tt)
		serializeAbi(&buf, s.Transitions[tt].Abi)
	}

	buf.WriteByte(byte(s.Script.kind))
	buf.Write(s.Script.code)

	return buf.Bytes()
}

func serializeAbi[A ~uint8](buf *bytes.Buffer, abi map[A]EntryPoint) {
	actions := make([]A, 0, len(abi))
	for action := range abi {
		actions = append(actions, action)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	for _, action := range actions {
		buf.WriteByte(byte(action))
		ep := abi[action].Bytes()
		buf.Write(ep[:])
	}
}

func sortedKeys[V any](m map[uint16]V) []uint16 {
	keys := make([]uint16, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}
