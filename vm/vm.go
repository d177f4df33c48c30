// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vm interfaces the virtual machines validating contract nodes: the
// embedded procedure set and externally-supplied AluVM runtimes. Concrete
// machines are wrapped into the VmApi capability and selected from the
// schema's validation script.
package vm

import (
	log "github.com/luxfi/log"

	"github.com/crisdut/rgb-core/contract"
	"github.com/crisdut/rgb-core/schema"
	"github.com/crisdut/rgb-core/validation"
)

// VmApi is the capability exposed to the validation pipeline. One call
// validates the state change of a single contract node; all inputs are
// borrowed for the duration of the call.
type VmApi interface {
	Validate(
		nodeID contract.NodeId,
		subtype schema.NodeSubtype,
		prevOwned, currOwned *contract.OwnedRights,
		prevPublic, currPublic contract.PublicRights,
		meta contract.Metadata,
	) validation.Failure
}

// Vm routes validation to the concrete machine selected by the schema's
// validation script. The union is closed over the two known machines so the
// set of consensus-relevant code paths stays auditable.
type Vm struct {
	embedded *EmbeddedVm
	scripted *Runtime
}

var _ VmApi = (*Vm)(nil)

// New instantiates the VM declared by the schema's validation script.
// Schemata binding AluVM bytecode get a runtime without an interpreter;
// attach one with NewWithEngine.
func New(sch *schema.Schema) (*Vm, error) {
	return NewWithEngine(sch, nil)
}

// NewWithEngine instantiates the VM declared by the schema's validation
// script, binding AluVM scripts to the given interpreter.
func NewWithEngine(sch *schema.Schema, engine ScriptEngine) (*Vm, error) {
	switch sch.Script.VmType() {
	case schema.VmTypeEmbedded:
		embedded, err := NewEmbeddedVm(sch)
		if err != nil {
			return nil, err
		}
		return &Vm{embedded: embedded}, nil
	default:
		return &Vm{scripted: NewRuntime(sch.Script.ByteCode(), engine)}, nil
	}
}

// Validate routes the node to the selected machine and reports its result.
func (vm *Vm) Validate(
	nodeID contract.NodeId,
	subtype schema.NodeSubtype,
	prevOwned, currOwned *contract.OwnedRights,
	prevPublic, currPublic contract.PublicRights,
	meta contract.Metadata,
) validation.Failure {
	var failure validation.Failure
	if vm.embedded != nil {
		failure = vm.embedded.Validate(nodeID, subtype, prevOwned, currOwned, prevPublic, currPublic, meta)
	} else {
		failure = vm.scripted.Validate(nodeID, subtype, prevOwned, currOwned, prevPublic, currPublic, meta)
	}
	if failure != nil {
		log.Debug("contract node failed script validation", "node", nodeID, "err", failure)
	}
	return failure
}
