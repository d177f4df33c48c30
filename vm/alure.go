// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/crisdut/rgb-core/contract"
	"github.com/crisdut/rgb-core/schema"
	"github.com/crisdut/rgb-core/validation"
)

// ScriptEngine is implemented by external AluVM interpreters. An engine
// executes the routine registered for the node's subtype inside the given
// bytecode image and reports the result with the same error-to-failure
// mapping as the embedded machine.
type ScriptEngine interface {
	ValidateNode(
		code []byte,
		nodeID contract.NodeId,
		subtype schema.NodeSubtype,
		prevOwned, currOwned *contract.OwnedRights,
		prevPublic, currPublic contract.PublicRights,
		meta contract.Metadata,
	) validation.Failure
}

// Runtime binds an AluVM bytecode image to an interpreter. Constructed per
// validation session; holds no mutable state across node validations.
type Runtime struct {
	code   []byte
	engine ScriptEngine
}

var _ VmApi = (*Runtime)(nil)

// NewRuntime binds the bytecode to the given interpreter. A nil engine
// yields a runtime that fails every node: a schema demanding script
// validation must never silently pass without an interpreter.
func NewRuntime(code []byte, engine ScriptEngine) *Runtime {
	return &Runtime{code: code, engine: engine}
}

// Validate executes the script routine for the node.
func (r *Runtime) Validate(
	nodeID contract.NodeId,
	subtype schema.NodeSubtype,
	prevOwned, currOwned *contract.OwnedRights,
	prevPublic, currPublic contract.PublicRights,
	meta contract.Metadata,
) validation.Failure {
	if r.engine == nil {
		return &validation.ScriptFailure{NodeID: nodeID, Code: HandlerNotImplemented.Code()}
	}
	return r.engine.ValidateNode(r.code, nodeID, subtype, prevOwned, currOwned, prevPublic, currPublic, meta)
}
