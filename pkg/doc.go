// Package pkg provides the core libraries for schemeline lineage diagrams.
//
// # Overview
//
// Schemeline places historical input-method schemes on a vertically
// compressed timeline and infers derivation relationships between them.
// The pkg directory is organized into three main areas:
//
//  1. Engine - pure layout computation (scheme, timeline, relate, layout,
//     connector)
//  2. Sinks - artifact generation (render)
//  3. Shell - orchestration and infrastructure (pipeline, cache, config,
//     errors, observability, buildinfo)
//
// # Architecture
//
// The typical data flow:
//
//	Records file (JSON)
//	         ↓
//	scheme: decode, filter, chronological sort
//	         ↓
//	timeline: year axis compression         relate: edge inference
//	         ↓                                       ↓
//	layout: placement + refinement  ←———————————————┘
//	         ↓
//	connector: curve geometry, focus labels
//	         ↓
//	render: SVG / JSON / DOT artifacts
//
// The engine packages are pure functions over immutable input: no locking,
// no shared state, and full recomputation on every invocation. The pipeline
// package wires the stages together and caches rendered artifacts by
// content hash.
package pkg
