// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import "github.com/crisdut/rgb-core/schema"

type fieldKind uint8

const (
	fieldKindU64 fieldKind = iota
	fieldKindBytes
)

// FieldValue is a single decoded metadata value.
type FieldValue struct {
	kind fieldKind
	num  uint64
	data []byte
}

// FieldU64 builds a numeric metadata value.
func FieldU64(v uint64) FieldValue { return FieldValue{kind: fieldKindU64, num: v} }

// FieldBytes builds a byte-string metadata value.
func FieldBytes(data []byte) FieldValue { return FieldValue{kind: fieldKindBytes, data: data} }

// Metadata maps field types to their ordered value sequences. Field types
// must appear in the schema's field-type table; that is checked by schema
// validation before the VM runs.
type Metadata map[schema.FieldType][]FieldValue

// U64 returns the numeric values of the given field type, preserving order
// and skipping values of other kinds.
func (m Metadata) U64(t schema.FieldType) []uint64 {
	fields := m[t]
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		if f.kind == fieldKindU64 {
			out = append(out, f.num)
		}
	}
	return out
}

// Bytes returns the byte-string values of the given field type, preserving
// order and skipping values of other kinds.
func (m Metadata) Bytes(t schema.FieldType) [][]byte {
	fields := m[t]
	out := make([][]byte, 0, len(fields))
	for _, f := range fields {
		if f.kind == fieldKindBytes {
			out = append(out, f.data)
		}
	}
	return out
}
