// Package domain defines the public record contract of the capacity engine:
// the per-node record, the tri-state quantity model, criterion code lists,
// the warning taxonomy and the dataset handed to external collaborators.
//
// The guiding rule throughout is that reported values are authoritative.
// Anything the engine recomputes lives in Node.Derived and only ever meets
// the reported values at the warning layer.
package domain
