// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package value implements confidential amounts for client-side-validated
// contract state: revealed (plaintext + blinding) and confidential (Pedersen
// commitment) forms, plus the homomorphic sum check used by the validation
// procedures guarding against inflation.
package value

// OneKey is the distinguished blinding scalar (the scalar one) used to commit
// the issued-supply amount deterministically, so the issued amount can appear
// as a virtual input in inflation checks without a separate blinding.
var OneKey = [32]byte{31: 0x01}

// Revealed is a plaintext asset amount together with its blinding factor.
type Revealed struct {
	Value    uint64
	Blinding [32]byte
}

// Confidential is a Pedersen commitment to an amount: a compressed bn254 G1
// point C = v*G + r*H.
type Confidential struct {
	Commitment [32]byte
}

// CommitConceal projects the revealed amount to its confidential form.
func (r Revealed) CommitConceal() Confidential {
	return Commit(r.Value, r.Blinding)
}
