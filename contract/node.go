// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contract holds the node-side data model of client-side-validated
// contracts: node identifiers, owned and public rights, state assignments and
// metadata, together with the read-only views consumed by the validation VM.
package contract

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/crisdut/rgb-core/schema"
)

// nodeIdTag commits node id derivation to a specific protocol version.
const nodeIdTag = "urn:lnpbp:rgb:node:v01#202302A"

// NodeId is a 32-byte tagged commitment to a contract node. Immutable and
// collision-resistant.
type NodeId [32]byte

// CommitToNodeId derives the node id from the node's canonical serialized
// form.
func CommitToNodeId(serialized []byte) NodeId {
	var id NodeId
	blake3.DeriveKey(nodeIdTag, serialized, id[:])
	return id
}

// NodeIdFromSlice converts a 32-byte slice into a node id.
func NodeIdFromSlice(b []byte) (NodeId, bool) {
	var id NodeId
	if len(b) != len(id) {
		return id, false
	}
	copy(id[:], b)
	return id, true
}

func (id NodeId) String() string { return hex.EncodeToString(id[:]) }

// NodeOutput references a single owned-right assignment of a contract node.
type NodeOutput struct {
	Node     NodeId
	OutputNo uint16
}

// OutPoint references a transaction output on the underlying blockchain.
type OutPoint struct {
	Txid [32]byte
	Vout uint32
}

// Transition is a state transition node under construction. Only the parts
// needed by transition constructors are modelled; anchoring and sealing
// happen outside the VM.
type Transition struct {
	TransitionType schema.TransitionType
	Metadata       Metadata
	OwnedRights    *OwnedRights
	PublicRights   PublicRights
}
