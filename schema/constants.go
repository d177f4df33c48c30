// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schema

// Reserved type ids common to different schemata. Software can recognize
// these even when the specific schema is unknown, since the ids are bound to
// a fixed semantic meaning. The embedded validation procedures rely on them;
// they are part of the protocol's compatibility surface and must not change.

// Metadata field types.
const (
	// FieldTypeTicker is the ticker of the asset.
	FieldTypeTicker FieldType = 0x00

	// FieldTypeName is the contract or asset name.
	FieldTypeName FieldType = 0x01

	// FieldTypeContractText is the Ricardian contract text.
	FieldTypeContractText FieldType = 0x02

	// FieldTypePrecision is the decimal precision for amount values used in
	// a contract.
	FieldTypePrecision FieldType = 0x03

	// FieldTypeTimestamp marks the moment of contract creation in genesis.
	FieldTypeTimestamp FieldType = 0x04

	// FieldTypeCommentary is a generic comment about the contract or a
	// state transition.
	FieldTypeCommentary FieldType = 0x05

	// FieldTypeData is binary data attached to a state transition.
	FieldTypeData FieldType = 0x10

	// FieldTypeDataFormat is the schema-specific format of attached data.
	FieldTypeDataFormat FieldType = 0x11

	// FieldTypeIssuedSupply is read by procedures checking the issued
	// supply and inflation.
	FieldTypeIssuedSupply FieldType = 0xA0

	// FieldTypeBurnSupply is read by procedures checking proofs of burn.
	// Holds the amount of the burned supply as a revealed value.
	FieldTypeBurnSupply FieldType = 0xB0

	// FieldTypeBurnUtxo is read by procedures checking proofs of burn.
	// Holds a consensus-encoded transaction outpoint.
	FieldTypeBurnUtxo FieldType = 0xB1

	// FieldTypeHistoryProof is read by procedures checking proofs of burn.
	// Holds binary proof data.
	FieldTypeHistoryProof FieldType = 0xB2

	// FieldTypeHistoryProofFormat is read by procedures checking proofs of
	// burn. Holds the format of the provided proofs.
	FieldTypeHistoryProofFormat FieldType = 0xB3

	// FieldTypeLockDescriptor is read by procedures checking proofs of
	// reserve. Holds an encoded wallet descriptor.
	FieldTypeLockDescriptor FieldType = 0xC0

	// FieldTypeLockUtxo is read by procedures checking proofs of reserve.
	// Holds a consensus-encoded transaction outpoint.
	FieldTypeLockUtxo FieldType = 0xC1
)

// Owned-right state types.
const (
	// StateTypeRenominationRight allows renomination of contract
	// parameters.
	StateTypeRenominationRight OwnedRightType = 0x01

	// StateTypeInflationRight is read by procedures checking asset
	// inflation, both fungible and non-fungible.
	StateTypeInflationRight OwnedRightType = 0xA0

	// StateTypeOwnershipRight is read by procedures checking equivalence
	// between previous and new asset ownership.
	//
	// NB: StateTypeOwnershipRight + N for N in 1..8 (0xA2 through 0xA9) is
	// reserved for custom forms of ownership (like engraved NFT ownership).
	StateTypeOwnershipRight OwnedRightType = 0xA1

	// StateTypeIssueEpochRight allows defining epochs of asset
	// replacement.
	StateTypeIssueEpochRight OwnedRightType = 0xAA

	// StateTypeIssueReplacementRight allows replacing some of the state
	// issued under the contract.
	StateTypeIssueReplacementRight OwnedRightType = 0xAB

	// StateTypeIssueRevocationRight allows revoking some of the state
	// issued under the contract.
	StateTypeIssueRevocationRight OwnedRightType = 0xAC
)

// Transition types.
const (
	// TransitionTypeOwnershipTransfer transfers ownership over primary
	// contract state.
	TransitionTypeOwnershipTransfer TransitionType = 0x00

	// TransitionTypeStateModification modifies primary contract state,
	// possibly combined with an ownership transfer.
	TransitionTypeStateModification TransitionType = 0x01

	// TransitionTypeRenomination renominates contract metadata.
	TransitionTypeRenomination TransitionType = 0x10

	// TransitionTypeIssue is checked by the inflation validation
	// procedures, both fungible and non-fungible.
	TransitionTypeIssue TransitionType = 0xA0

	// TransitionTypeIssueEpoch groups issue-related operations.
	TransitionTypeIssueEpoch TransitionType = 0xA1

	// TransitionTypeIssueBurn burns some of the issued contract state.
	//
	// NB: Not the same as TransitionTypeRightsTermination, which
	// terminates the ability to use rights but not the state itself.
	TransitionTypeIssueBurn TransitionType = 0xA2

	// TransitionTypeIssueReplace replaces previously issued state with new
	// state.
	TransitionTypeIssueReplace TransitionType = 0xA3

	// TransitionTypeRightsSplit splits rights assigned to the same UTXO by
	// mistake.
	TransitionTypeRightsSplit TransitionType = 0xF0

	// TransitionTypeRightsTermination voids rights without executing them.
	TransitionTypeRightsTermination TransitionType = 0xFF
)
