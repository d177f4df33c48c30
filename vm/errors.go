// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import "fmt"

// HandlerError is the closed error taxonomy of the embedded procedures. The
// numeric discriminants are protocol-stable: they surface to callers as the
// code byte of a script failure.
type HandlerError uint16

const (
	// HandlerNotImplemented: the operation is acknowledged but not yet
	// implemented in the embedded VM.
	HandlerNotImplemented HandlerError = iota

	// HandlerInflation: asset inflation or excessive issue detected where
	// the contract schema prohibits it (both negative, i.e. deflation, and
	// positive).
	HandlerInflation

	// HandlerBrokenSchema: inconsistent schema data.
	//
	// NB: The VM does not validate schemata (that must happen before), but
	// when retrieved data contradicts what a valid schema guarantees, this
	// error is reported. Its occurrence most likely means a library bug,
	// since schemata must be validated before any VM method runs.
	HandlerBrokenSchema

	// HandlerNonEqualTypes: input and output assignment types differ where
	// a type match is required.
	HandlerNonEqualTypes

	// HandlerNonEqualState: state data differ where state equivalence is
	// required.
	HandlerNonEqualState

	// HandlerNonEqualAssignmentCount: the number of state assignments
	// differs where assignments must translate one-to-one.
	HandlerNonEqualAssignmentCount

	// HandlerConfidentialState: confidential state found where state
	// equivalence must be checked and the commitments do not match, or
	// where a revealed value is required.
	HandlerConfidentialState

	// HandlerValueOverflow: a sum of assigned values overflows the
	// schema-allowed bit dimension.
	HandlerValueOverflow

	// HandlerDataEncoding: wrong format of byte-encoded data.
	HandlerDataEncoding
)

func (e HandlerError) Error() string {
	switch e {
	case HandlerNotImplemented:
		return "validation operation is not yet implemented in the embedded VM"
	case HandlerInflation:
		return "asset inflation/excessive issue is detected when it is prohibited by the contract schema rules"
	case HandlerBrokenSchema:
		return "inconsistent schema data"
	case HandlerNonEqualTypes:
		return "non-equal input and output assignment types are found when type match is required"
	case HandlerNonEqualState:
		return "non-equal state data are found when state equivalence is required"
	case HandlerNonEqualAssignmentCount:
		return "non-equal number of state assignments when assignments are required to be translated one-to-one"
	case HandlerConfidentialState:
		return "confidential state data are found in location where state equivalence must be checked"
	case HandlerValueOverflow:
		return "sum of assigned values overflows schema-allowed bit dimension"
	case HandlerDataEncoding:
		return "wrong format for byte-encoded data"
	default:
		return fmt.Sprintf("unknown handler error %d", uint16(e))
	}
}

// Code returns the 8-bit discriminant surfaced in script failures.
func (e HandlerError) Code() uint8 { return uint8(e) }

type initErrorKind uint8

const (
	initByteCodeNotEmpty initErrorKind = iota
	initInvalidActionHandler
)

// InitError reports a schema-load failure of the embedded VM.
type InitError struct {
	kind       initErrorKind
	action     string
	entryPoint uint32
}

func errByteCodeNotEmpty() *InitError {
	return &InitError{kind: initByteCodeNotEmpty}
}

func errInvalidActionHandler(action fmt.Stringer, ep uint32) *InitError {
	return &InitError{kind: initInvalidActionHandler, action: action.String(), entryPoint: ep}
}

func (e *InitError) Error() string {
	switch e.kind {
	case initByteCodeNotEmpty:
		return "byte code for the embedded virtual machine must be an empty string, " +
			"otherwise a schema using the embedded virtual machine must be considered invalid"
	default:
		return fmt.Sprintf(
			"the entry point %d for action %s, which for the embedded machine must represent "+
				"a known embedded procedure id, does not match any of existing procedures",
			e.entryPoint, e.action)
	}
}

// DataIntegrityError reports that persisted schema data failed to decode.
type DataIntegrityError struct {
	msg string
}

func (e *DataIntegrityError) Error() string { return e.msg }

func errUnknownEntryPoint(ep uint32) *DataIntegrityError {
	return &DataIntegrityError{msg: fmt.Sprintf(
		"Entry point value %d does not correspond to any of known embedded procedures", ep)}
}
