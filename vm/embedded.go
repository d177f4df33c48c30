// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"math/bits"
	"sort"

	"github.com/crisdut/rgb-core/contract"
	"github.com/crisdut/rgb-core/schema"
	"github.com/crisdut/rgb-core/validation"
	"github.com/crisdut/rgb-core/value"
)

// EmbeddedVm executes the embedded procedure set against contract nodes.
// Handlers are resolved per node subtype through the schema's action tables;
// the instance holds no mutable state across node validations.
type EmbeddedVm struct {
	schema *schema.Schema
}

// NewEmbeddedVm binds the embedded VM to a schema. It fails with an
// InitError when the schema attaches bytecode to the embedded script, or
// when any action table references an entry point that is not a known
// embedded procedure.
func NewEmbeddedVm(sch *schema.Schema) (*EmbeddedVm, error) {
	if len(sch.Script.ByteCode()) != 0 {
		return nil, errByteCodeNotEmpty()
	}

	if ep, ok := sch.Genesis.Abi[schema.GenesisActionValidate]; ok {
		if _, known := NodeValidatorFromEntryPoint(ep); !known {
			return nil, errInvalidActionHandler(schema.GenesisActionValidate, uint32(ep))
		}
	}
	for _, ext := range sch.Extensions {
		if ep, ok := ext.Abi[schema.ExtensionActionValidate]; ok {
			if _, known := NodeValidatorFromEntryPoint(ep); !known {
				return nil, errInvalidActionHandler(schema.ExtensionActionValidate, uint32(ep))
			}
		}
	}
	for _, ts := range sch.Transitions {
		if ep, ok := ts.Abi[schema.TransitionActionValidate]; ok {
			if _, known := NodeValidatorFromEntryPoint(ep); !known {
				return nil, errInvalidActionHandler(schema.TransitionActionValidate, uint32(ep))
			}
		}
		if ep, ok := ts.Abi[schema.TransitionActionGenerateBlank]; ok {
			if _, known := TransitionConstructorFromEntryPoint(ep); !known {
				return nil, errInvalidActionHandler(schema.TransitionActionGenerateBlank, uint32(ep))
			}
		}
	}
	for _, state := range sch.OwnedRightTypes {
		if ep, ok := state.Abi[schema.AssignmentActionValidate]; ok {
			if _, known := AssignmentValidatorFromEntryPoint(ep); !known {
				return nil, errInvalidActionHandler(schema.AssignmentActionValidate, uint32(ep))
			}
		}
	}

	return &EmbeddedVm{schema: sch}, nil
}

// Validate runs the node validator declared for the node's subtype, then the
// assignment validators declared for each owned-right type. A subtype with
// no declared handler requires no validation.
func (vm *EmbeddedVm) Validate(
	nodeID contract.NodeId,
	subtype schema.NodeSubtype,
	prevOwned, currOwned *contract.OwnedRights,
	prevPublic, currPublic contract.PublicRights,
	meta contract.Metadata,
) validation.Failure {
	handler, herr := vm.nodeHandler(subtype)
	if herr != nil {
		return &validation.ScriptFailure{NodeID: nodeID, Code: handlerCode(herr)}
	}
	if handler != nil {
		err := handler.Validate(subtype, prevOwned, currOwned, prevPublic, currPublic, meta)
		if err != nil {
			return &validation.ScriptFailure{NodeID: nodeID, Code: handlerCode(err)}
		}
	}

	// Assignment-level validation runs only after the node validator
	// passes, over every owned-right type the schema declares a handler
	// for, in canonical order.
	for _, rightType := range sortedRightTypes(vm.schema) {
		ep, ok := vm.schema.OwnedRightTypes[rightType].Abi[schema.AssignmentActionValidate]
		if !ok {
			continue
		}
		validator, known := AssignmentValidatorFromEntryPoint(ep)
		if !known {
			return &validation.ScriptFailure{NodeID: nodeID, Code: HandlerBrokenSchema.Code()}
		}
		prevState := prevOwned.AssignmentsByType(rightType)
		currState := currOwned.AssignmentsByType(rightType)
		if err := validator.Validate(subtype, rightType, prevState, currState, meta); err != nil {
			return &validation.ScriptFailure{NodeID: nodeID, Code: handlerCode(err)}
		}
	}

	return nil
}

// nodeHandler resolves the node validator for a subtype from the schema's
// action tables. A nil handler with nil error means no validation is
// required. A subtype tag absent from the schema is a schema bug surfaced as
// HandlerBrokenSchema.
func (vm *EmbeddedVm) nodeHandler(subtype schema.NodeSubtype) (*NodeValidator, error) {
	switch subtype.Kind() {
	case schema.NodeKindGenesis:
		if ep, ok := vm.schema.Genesis.Abi[schema.GenesisActionValidate]; ok {
			return decodeNodeHandler(ep)
		}
		return nil, nil
	case schema.NodeKindStateTransition:
		t, _ := subtype.TransitionType()
		ts, ok := vm.schema.Transitions[t]
		if !ok {
			return nil, HandlerBrokenSchema
		}
		if ep, ok := ts.Abi[schema.TransitionActionValidate]; ok {
			return decodeNodeHandler(ep)
		}
		return nil, nil
	default:
		t, _ := subtype.ExtensionType()
		ext, ok := vm.schema.Extensions[t]
		if !ok {
			return nil, HandlerBrokenSchema
		}
		if ep, ok := ext.Abi[schema.ExtensionActionValidate]; ok {
			return decodeNodeHandler(ep)
		}
		return nil, nil
	}
}

func decodeNodeHandler(ep schema.EntryPoint) (*NodeValidator, error) {
	handler, known := NodeValidatorFromEntryPoint(ep)
	if !known {
		return nil, HandlerBrokenSchema
	}
	return &handler, nil
}

// Construct synthesizes a blank state transition through the constructor
// declared for the transition type. Routed separately from Validate: the
// construction capability never participates in the validation path.
func (vm *EmbeddedVm) Construct(
	transitionType schema.TransitionType,
	inputs []contract.NodeOutput,
	outpoints []contract.OutPoint,
) (*contract.Transition, error) {
	ts, ok := vm.schema.Transitions[transitionType]
	if !ok {
		return nil, HandlerBrokenSchema
	}
	ep, ok := ts.Abi[schema.TransitionActionGenerateBlank]
	if !ok {
		return nil, HandlerBrokenSchema
	}
	constructor, known := TransitionConstructorFromEntryPoint(ep)
	if !known {
		return nil, HandlerBrokenSchema
	}
	return constructor.Construct(inputs, outpoints)
}

// handlerCode maps a handler error to its stable discriminant. Anything
// outside the closed taxonomy is a library bug reported as a broken schema.
func handlerCode(err error) uint8 {
	if herr, ok := err.(HandlerError); ok {
		return herr.Code()
	}
	return HandlerBrokenSchema.Code()
}

func sortedRightTypes(sch *schema.Schema) []schema.OwnedRightType {
	types := make([]schema.OwnedRightType, 0, len(sch.OwnedRightTypes))
	for t := range sch.OwnedRightTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Validate runs the node-level procedure.
func (v NodeValidator) Validate(
	subtype schema.NodeSubtype,
	prevOwned, currOwned *contract.OwnedRights,
	prevPublic, currPublic contract.PublicRights,
	meta contract.Metadata,
) error {
	switch v {
	case FungibleIssue:
		return fungibleIssue(meta, prevOwned, currOwned)
	case IdentityTransfer:
		return inputOutputCountEq(prevOwned, currOwned)
	case NftIssue:
		return nftIssue(meta, prevOwned, currOwned)
	case ProofOfBurn:
		return proofOfBurn(meta)
	case ProofOfReserve:
		return proofOfReserve(meta)
	case RightsSplit:
		return inputOutputValueEq(prevOwned, currOwned)
	default:
		return HandlerBrokenSchema
	}
}

func fungibleIssue(
	meta contract.Metadata,
	prevOwned, currOwned *contract.OwnedRights,
) error {
	issued, overflow := safeSum(meta.U64(schema.FieldTypeIssuedSupply))
	if overflow {
		return HandlerValueOverflow
	}

	// [SECURITY-CRITICAL]: First we need to validate that we do not issue
	//                      more assets than allowed by our issue rights
	allowedInflation, err := revealedValueSum(prevOwned.AssignmentsByType(schema.StateTypeInflationRight))
	if err != nil {
		return err
	}
	futureInflation, err := revealedValueSum(currOwned.AssignmentsByType(schema.StateTypeInflationRight))
	if err != nil {
		return err
	}
	sum, carry := bits.Add64(issued, futureInflation, 0)
	if carry != 0 {
		return HandlerValueOverflow
	}
	if sum != allowedInflation {
		return HandlerInflation
	}

	// [SECURITY-CRITICAL]: Second, we need to make sure that the amount of
	//                      assigned assets are equal to the number of
	//                      issued assets
	inputs := prevOwned.AssignmentsByType(schema.StateTypeOwnershipRight).
		ToConfidentialStatePedersen()
	outputs := currOwned.AssignmentsByType(schema.StateTypeOwnershipRight).
		ToConfidentialStatePedersen()

	// [SECURITY-CRITICAL]: Adding amount that has to be issued as another
	//                      input
	inputs = append(inputs, value.Commit(issued, value.OneKey))

	if !value.VerifyCommitSum(outputs, inputs) {
		return HandlerInflation
	}

	return nil
}

func nftIssue(
	meta contract.Metadata,
	prevOwned, currOwned *contract.OwnedRights,
) error {
	issued := currOwned.AssignmentsByType(schema.StateTypeOwnershipRight).Len()

	// [SECURITY-CRITICAL]: We need to validate that we do not issue more
	//                      asset items than allowed by our issue rights
	allowed, err := prevOwned.AssignmentsByType(schema.StateTypeInflationRight).
		AsRevealedStateValues()
	if err != nil {
		return HandlerConfidentialState
	}
	future, err := currOwned.AssignmentsByType(schema.StateTypeInflationRight).
		AsRevealedStateValues()
	if err != nil {
		return HandlerConfidentialState
	}

	if issued+len(future) != len(allowed) {
		return HandlerInflation
	}

	return nil
}

func proofOfBurn(meta contract.Metadata) error {
	return HandlerNotImplemented
}

func proofOfReserve(meta contract.Metadata) error {
	descriptors := meta.Bytes(schema.FieldTypeLockDescriptor)
	if len(descriptors) == 0 || len(descriptors[0]) == 0 {
		return HandlerBrokenSchema
	}
	// TODO #81: Implement blockchain access for the VM
	return HandlerNotImplemented
}

func inputOutputValueEq(prevOwned, currOwned *contract.OwnedRights) error {
	prev := prevOwned.AsInner()
	curr := currOwned.AsInner()
	if len(prev) != len(curr) {
		return HandlerNonEqualTypes
	}

	for i := range prev {
		prevEntry, currEntry := prev[i], curr[i]
		if prevEntry.Type != currEntry.Type {
			return HandlerNonEqualTypes
		}
		prevState, currState := prevEntry.Assignments, currEntry.Assignments
		if prevState.StateFormat() != currState.StateFormat() {
			return HandlerBrokenSchema
		}
		if prevState.Len() != currState.Len() {
			return HandlerNonEqualAssignmentCount
		}

		switch prevState.StateFormat() {
		case schema.StateFormatDeclarative:
			// Nothing to compare: declarative rights carry no state.
		case schema.StateFormatDiscreteFiniteField:
			prevValues, currValues := prevState.Values(), currState.Values()
			for j := range prevValues {
				prevRevealed, prevOk := prevValues[j].AsRevealedState()
				currRevealed, currOk := currValues[j].AsRevealedState()
				if prevOk && currOk {
					if prevRevealed.Value != currRevealed.Value {
						return HandlerNonEqualState
					}
				} else if prevValues[j].ToConfidentialState() != currValues[j].ToConfidentialState() {
					return HandlerConfidentialState
				}
			}
		case schema.StateFormatCustomData:
			prevData, currData := prevState.Data(), currState.Data()
			for j := range prevData {
				if !prevData[j].StateEquals(currData[j]) {
					return HandlerNonEqualState
				}
			}
		default:
			// Cross-variant pairs are prevented by the format equality
			// check above; an unknown format is a schema bug.
			return HandlerBrokenSchema
		}
	}

	return nil
}

func inputOutputCountEq(prevOwned, currOwned *contract.OwnedRights) error {
	prev := prevOwned.AsInner()
	curr := currOwned.AsInner()
	if len(prev) != len(curr) {
		return HandlerNonEqualTypes
	}

	for i := range prev {
		if prev[i].Type != curr[i].Type {
			return HandlerNonEqualTypes
		}
		if prev[i].Assignments.Len() != curr[i].Assignments.Len() {
			return HandlerNonEqualAssignmentCount
		}
	}

	return nil
}

// Validate runs the assignment-level procedure on one owned-right type.
func (v AssignmentValidator) Validate(
	subtype schema.NodeSubtype,
	rightType schema.OwnedRightType,
	prevState, currState contract.AssignmentVec,
	meta contract.Metadata,
) error {
	switch v {
	case FungibleNoInflation:
		return validatePedersenSum(prevState, currState)
	case NoOverflow:
		return validateNoOverflow(currState)
	default:
		return HandlerBrokenSchema
	}
}

func validatePedersenSum(prevState, currState contract.AssignmentVec) error {
	inputs := prevState.ToConfidentialStatePedersen()
	outputs := currState.ToConfidentialStatePedersen()

	// [CONSENSUS-CRITICAL]:
	// [SECURITY-CRITICAL]: Validation of the absence of inflation of the
	//                      asset
	// NB: Bulletproofs are validated by the schema for all state which
	//     contains bulletproof data
	if !value.VerifyCommitSum(inputs, outputs) {
		return HandlerInflation
	}
	return nil
}

func validateNoOverflow(currState contract.AssignmentVec) error {
	revealed, err := currState.AsRevealedStateValues()
	if err != nil {
		return HandlerConfidentialState
	}
	var sum uint64
	for _, r := range revealed {
		var carry uint64
		sum, carry = bits.Add64(sum, r.Value, 0)
		if carry != 0 {
			return HandlerValueOverflow
		}
	}
	return nil
}

// Construct synthesizes a blank state transition preserving all rights.
func (v TransitionConstructor) Construct(
	inputs []contract.NodeOutput,
	outpoints []contract.OutPoint,
) (*contract.Transition, error) {
	// TODO #17: Implement blank transitions
	return nil, HandlerNotImplemented
}

// revealedValueSum folds the revealed amounts of an assignment vector with
// checked addition.
func revealedValueSum(state contract.AssignmentVec) (uint64, error) {
	revealed, err := state.AsRevealedStateValues()
	if err != nil {
		return 0, HandlerConfidentialState
	}
	var sum uint64
	for _, r := range revealed {
		var carry uint64
		sum, carry = bits.Add64(sum, r.Value, 0)
		if carry != 0 {
			return 0, HandlerValueOverflow
		}
	}
	return sum, nil
}

// safeSum folds plain values with checked addition, reporting overflow.
func safeSum(values []uint64) (uint64, bool) {
	var sum uint64
	for _, v := range values {
		var carry uint64
		sum, carry = bits.Add64(sum, v, 0)
		if carry != 0 {
			return 0, true
		}
	}
	return sum, false
}
