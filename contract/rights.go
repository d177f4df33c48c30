// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"sort"

	"github.com/crisdut/rgb-core/schema"
)

// OwnedRightsEntry pairs an owned-right type with its assignment vector.
type OwnedRightsEntry struct {
	Type        schema.OwnedRightType
	Assignments AssignmentVec
}

// OwnedRights is the mapping from owned-right types to their assignment
// vectors. Iteration follows the canonical strict ordering (ascending type).
type OwnedRights struct {
	inner map[schema.OwnedRightType]AssignmentVec
}

// NewOwnedRights builds the mapping from the given entries. Later entries
// with a duplicate type replace earlier ones.
func NewOwnedRights(entries ...OwnedRightsEntry) *OwnedRights {
	inner := make(map[schema.OwnedRightType]AssignmentVec, len(entries))
	for _, e := range entries {
		inner[e.Type] = e.Assignments
	}
	return &OwnedRights{inner: inner}
}

// Len returns the number of owned-right types present.
func (o *OwnedRights) Len() int { return len(o.inner) }

// AssignmentsByType returns the assignment vector of the given type, or an
// empty vector when the type is absent.
func (o *OwnedRights) AssignmentsByType(t schema.OwnedRightType) AssignmentVec {
	return o.inner[t]
}

// AsInner returns all entries in canonical strict order.
func (o *OwnedRights) AsInner() []OwnedRightsEntry {
	entries := make([]OwnedRightsEntry, 0, len(o.inner))
	for t, vec := range o.inner {
		entries = append(entries, OwnedRightsEntry{Type: t, Assignments: vec})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Type < entries[j].Type })
	return entries
}

// PublicRights is the set of public-right types declared by a node.
type PublicRights struct {
	inner map[schema.PublicRightType]struct{}
}

// NewPublicRights builds the set from the given types.
func NewPublicRights(types ...schema.PublicRightType) PublicRights {
	inner := make(map[schema.PublicRightType]struct{}, len(types))
	for _, t := range types {
		inner[t] = struct{}{}
	}
	return PublicRights{inner: inner}
}

// Len returns the number of public-right types declared.
func (p PublicRights) Len() int { return len(p.inner) }

// Contains reports whether the given type is declared.
func (p PublicRights) Contains(t schema.PublicRightType) bool {
	_, ok := p.inner[t]
	return ok
}

// AsSorted returns the declared types in ascending order.
func (p PublicRights) AsSorted() []schema.PublicRightType {
	types := make([]schema.PublicRightType, 0, len(p.inner))
	for t := range p.inner {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
