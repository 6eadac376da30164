// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go struct representation of a compiled bed
// document. It is the strongly-typed, in-memory form of what the user wrote,
// with units already normalized to SI and defaults already applied.
//
// # Core Concepts
//
// The model is built around one root and six sections:
//
//   - Document: The root. One fresh Document is created per compile, filled
//     by the builder, checked by the validator and then serialized.
//
//   - BedGeometry, Lids, Particles, Packing, Export: Always present. Fields a
//     user may leave unset are pointers, everything else is a plain value
//     holding either the user's input or the default.
//
//   - CFD: Optional. A nil CFD means the source had no cfd section.
//
// Why a separate model package?
//
// The model sits between the builder, the validator and the canonicalizer.
// None of them needs to know about tokens or parse trees, and the
// canonicalizer can derive the serialized shape directly from the struct
// tags: every field carries a `cty` tag naming its key in the JSON artifact.
//
// A validated Document is treated as read-only. Validation hands out a deep
// copy (see Document.Clone) so later mutation by a caller never reaches back
// into the compiler.
package model
