// SPDX-License-Identifier: MIT
// Package: cssel/manifest
//
// errors.go — sentinel errors for manifest loading and building.
//
// Error policy follows the selector package: package-level sentinels only,
// errors.Is for branching, %w wrapping for per-entry context. Build-time
// failures additionally preserve the selector sentinels of the underlying
// construction error.

package manifest

import "errors"

// ErrNoName indicates a selectors entry without a name. Every entry must
// be addressable for ref resolution and filtered rendering.
// Usage: if errors.Is(err, ErrNoName) { /* name the entry */ }.
var ErrNoName = errors.New("manifest: entry has no name")

// ErrDuplicateName indicates two entries share a name.
// Usage: if errors.Is(err, ErrDuplicateName) { /* rename one entry */ }.
var ErrDuplicateName = errors.New("manifest: duplicate entry name")

// ErrUnknownRef indicates a node references a name that was not built
// earlier in the document. References are resolved strictly top-down.
// Usage: if errors.Is(err, ErrUnknownRef) { /* reorder or fix the ref */ }.
var ErrUnknownRef = errors.New("manifest: reference to unknown selector")

// ErrAmbiguousNode indicates a node mixes `combine` with fragment fields
// or `ref`. A node is exactly one construction form.
// Usage: if errors.Is(err, ErrAmbiguousNode) { /* split the node */ }.
var ErrAmbiguousNode = errors.New("manifest: node mixes combine with other fields")

// ErrEmptyNode indicates a node with no construction fields at all.
// Usage: if errors.Is(err, ErrEmptyNode) { /* fill in the node */ }.
var ErrEmptyNode = errors.New("manifest: node has no fields")
