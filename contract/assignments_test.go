// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"errors"
	"testing"

	"github.com/crisdut/rgb-core/schema"
	"github.com/crisdut/rgb-core/value"
)

func blinding(b byte) [32]byte {
	var out [32]byte
	out[31] = b
	return out
}

func TestAssignmentVecZeroValue(t *testing.T) {
	var vec AssignmentVec
	if vec.StateFormat() != schema.StateFormatDeclarative {
		t.Fatalf("zero vector format = %v, want declarative", vec.StateFormat())
	}
	if vec.Len() != 0 {
		t.Fatalf("zero vector length = %d, want 0", vec.Len())
	}
}

func TestAsRevealedStateValues(t *testing.T) {
	vec := FungibleAssignments(
		RevealedValue(100, blinding(1)),
		RevealedValue(200, blinding(2)),
	)
	revealed, err := vec.AsRevealedStateValues()
	if err != nil {
		t.Fatalf("AsRevealedStateValues failed: %v", err)
	}
	if len(revealed) != 2 {
		t.Fatalf("expected 2 revealed values, got %d", len(revealed))
	}
	if revealed[0].Value != 100 || revealed[1].Value != 200 {
		t.Error("revealed values out of order")
	}

	conf := value.Commit(300, blinding(3))
	vec = FungibleAssignments(
		RevealedValue(100, blinding(1)),
		ConfidentialValue(conf.Commitment),
	)
	if _, err := vec.AsRevealedStateValues(); !errors.Is(err, ErrConfidentialState) {
		t.Fatalf("expected ErrConfidentialState, got %v", err)
	}
}

func TestToConfidentialStatePedersen(t *testing.T) {
	conf := value.Commit(200, blinding(2))
	vec := FungibleAssignments(
		RevealedValue(100, blinding(1)),
		ConfidentialValue(conf.Commitment),
	)
	commitments := vec.ToConfidentialStatePedersen()
	if len(commitments) != 2 {
		t.Fatalf("expected 2 commitments, got %d", len(commitments))
	}
	if commitments[0] != value.Commit(100, blinding(1)) {
		t.Error("revealed element not projected through commitment")
	}
	if commitments[1] != conf {
		t.Error("confidential element not preserved")
	}
}

func TestDataAssignmentConcealment(t *testing.T) {
	a := RevealedData([]byte("identity-token"))
	b := RevealedData([]byte("identity-token"))
	if !a.StateEquals(b) {
		t.Fatal("equal revealed data must commit to equal state")
	}

	c := ConfidentialData(a.ToConfidentialState())
	if !a.StateEquals(c) {
		t.Fatal("revealed data must equal its own concealment")
	}

	d := RevealedData([]byte("other-token"))
	if a.StateEquals(d) {
		t.Fatal("different data must not commit to equal state")
	}
}

func TestOwnedRightsCanonicalOrder(t *testing.T) {
	rights := NewOwnedRights(
		OwnedRightsEntry{Type: schema.StateTypeOwnershipRight, Assignments: DeclarativeAssignments(1)},
		OwnedRightsEntry{Type: schema.StateTypeRenominationRight, Assignments: DeclarativeAssignments(2)},
		OwnedRightsEntry{Type: schema.StateTypeInflationRight, Assignments: DeclarativeAssignments(3)},
	)
	inner := rights.AsInner()
	if len(inner) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(inner))
	}
	want := []schema.OwnedRightType{
		schema.StateTypeRenominationRight,
		schema.StateTypeInflationRight,
		schema.StateTypeOwnershipRight,
	}
	for i, entry := range inner {
		if entry.Type != want[i] {
			t.Errorf("entry %d type = %#x, want %#x", i, entry.Type, want[i])
		}
	}
}

func TestAssignmentsByTypeAbsent(t *testing.T) {
	rights := NewOwnedRights()
	vec := rights.AssignmentsByType(schema.StateTypeOwnershipRight)
	if vec.Len() != 0 {
		t.Fatal("absent type must yield an empty vector")
	}
}

func TestMetadataViews(t *testing.T) {
	meta := Metadata{
		schema.FieldTypeIssuedSupply: {FieldU64(100), FieldU64(23)},
		schema.FieldTypeLockDescriptor: {
			FieldBytes([]byte{0x51, 0x21}),
		},
	}

	supply := meta.U64(schema.FieldTypeIssuedSupply)
	if len(supply) != 2 || supply[0] != 100 || supply[1] != 23 {
		t.Errorf("unexpected issued supply view: %v", supply)
	}

	descriptors := meta.Bytes(schema.FieldTypeLockDescriptor)
	if len(descriptors) != 1 || len(descriptors[0]) != 2 {
		t.Errorf("unexpected descriptor view: %v", descriptors)
	}

	if got := meta.U64(schema.FieldTypeBurnSupply); len(got) != 0 {
		t.Errorf("absent field type must yield empty view, got %v", got)
	}
	// Kind filters apply: a bytes field has no u64 view.
	if got := meta.U64(schema.FieldTypeLockDescriptor); len(got) != 0 {
		t.Errorf("bytes field leaked into u64 view: %v", got)
	}
}

func TestNodeIdDerivation(t *testing.T) {
	a := CommitToNodeId([]byte("node-a"))
	b := CommitToNodeId([]byte("node-a"))
	if a != b {
		t.Fatal("node id must be deterministic")
	}
	if a == CommitToNodeId([]byte("node-b")) {
		t.Fatal("distinct nodes must not collide")
	}

	if _, ok := NodeIdFromSlice(make([]byte, 31)); ok {
		t.Error("short slice accepted as node id")
	}
	if _, ok := NodeIdFromSlice(a[:]); !ok {
		t.Error("round-trip through slice failed")
	}
}
