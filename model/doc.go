// Package model defines the diff-result graph that oasreport renders.
//
// The graph is produced by an external comparison engine and consumed
// read-only by the report package. [DiffResult] is the root; it enumerates
// added, removed, and deprecated endpoints plus per-operation and per-schema
// change nodes. [ChangedSchema] is the recursive unit: its properties and
// items may point back at an ancestor node when the underlying schemas are
// self-referential, so consumers traversing the graph must track node
// identity, not structure.
//
// Scalar before/after values are carried as change pairs ([StringChange],
// [BoolChange], [IntChange]) whose sides are pointers: a nil side means the
// value was absent on that side, which renders as an explicit JSON null.
// A nil change pair means the field did not change at all and is omitted
// from the report entirely.
package model
