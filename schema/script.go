// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schema

import "encoding/binary"

// VmType identifies the virtual machine validating contracts under a schema.
type VmType uint8

const (
	// VmTypeEmbedded selects the built-in procedure set.
	VmTypeEmbedded VmType = iota
	// VmTypeAluVM selects an AluVM bytecode image.
	VmTypeAluVM
)

func (v VmType) String() string {
	switch v {
	case VmTypeEmbedded:
		return "embedded"
	case VmTypeAluVM:
		return "aluvm"
	default:
		return "unknown"
	}
}

// ValidationScript is the validation code bound to a schema: either the
// embedded procedure set or an AluVM bytecode image. Created at schema
// construction and frozen.
type ValidationScript struct {
	kind VmType
	code []byte
}

// EmbeddedScript returns the script selecting the embedded procedure set.
func EmbeddedScript() ValidationScript {
	return ValidationScript{kind: VmTypeEmbedded}
}

// AluVMScript returns the script binding the given AluVM bytecode.
func AluVMScript(code []byte) ValidationScript {
	return ValidationScript{kind: VmTypeAluVM, code: code}
}

// ScriptFromParts reassembles a validation script from its persisted parts.
// No invariant is checked here: a persisted schema claiming the embedded VM
// while carrying bytecode is rejected by the VM at load time.
func ScriptFromParts(kind VmType, code []byte) ValidationScript {
	return ValidationScript{kind: kind, code: code}
}

func (s ValidationScript) VmType() VmType { return s.kind }

// ByteCode returns the attached bytecode. Empty for the embedded VM.
func (s ValidationScript) ByteCode() []byte { return s.code }

// EntryPoint names an embedded procedure or an AluVM routine offset. The
// embedded procedure ids form a closed, protocol-stable registry.
type EntryPoint uint32

// Bytes returns the wire form of the entry point: a little-endian u32.
func (e EntryPoint) Bytes() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(e))
	return b
}

// EntryPointFromBytes decodes an entry point from its wire form.
func EntryPointFromBytes(b [4]byte) EntryPoint {
	return EntryPoint(binary.LittleEndian.Uint32(b[:]))
}

// GenesisAction is a slot in the genesis handler table.
type GenesisAction uint8

// GenesisActionValidate selects the procedure validating the genesis node.
const GenesisActionValidate GenesisAction = 0x00

func (GenesisAction) String() string { return "validate" }

// TransitionAction is a slot in a state transition handler table.
type TransitionAction uint8

const (
	// TransitionActionValidate selects the procedure validating nodes of
	// this transition type.
	TransitionActionValidate TransitionAction = 0x00
	// TransitionActionGenerateBlank selects the constructor synthesizing
	// blank transitions of this type.
	TransitionActionGenerateBlank TransitionAction = 0x01
)

func (a TransitionAction) String() string {
	if a == TransitionActionGenerateBlank {
		return "generate-blank"
	}
	return "validate"
}

// ExtensionAction is a slot in a state extension handler table.
type ExtensionAction uint8

// ExtensionActionValidate selects the procedure validating nodes of this
// extension type.
const ExtensionActionValidate ExtensionAction = 0x00

func (ExtensionAction) String() string { return "validate" }

// AssignmentAction is a slot in an owned-right state handler table.
type AssignmentAction uint8

// AssignmentActionValidate selects the procedure validating assignments of
// this owned-right type.
const AssignmentActionValidate AssignmentAction = 0x00

func (AssignmentAction) String() string { return "validate" }

// Handler tables mapping actions to entry points.
type (
	GenesisAbi    map[GenesisAction]EntryPoint
	TransitionAbi map[TransitionAction]EntryPoint
	ExtensionAbi  map[ExtensionAction]EntryPoint
	AssignmentAbi map[AssignmentAction]EntryPoint
)
