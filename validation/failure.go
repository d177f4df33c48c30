// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package validation defines the failure values surfaced by the validation
// pipeline. The set of failure types is closed so that every
// consensus-relevant code path stays auditable.
package validation

import (
	"fmt"

	"github.com/crisdut/rgb-core/contract"
)

// Failure is a protocol validation failure tagged with the offending node.
type Failure interface {
	error
	// FailedNode returns the id of the node that failed validation.
	FailedNode() contract.NodeId
}

// ScriptFailure reports that the validation script failed for a node. Code
// is the stable discriminant of the handler error raised by the script.
type ScriptFailure struct {
	NodeID contract.NodeId
	Code   uint8
}

func (f *ScriptFailure) Error() string {
	return fmt.Sprintf("validation script failure %d for node %s", f.Code, f.NodeID)
}

// FailedNode returns the id of the node that failed validation.
func (f *ScriptFailure) FailedNode() contract.NodeId { return f.NodeID }
