// Package normalize turns a messy recorded-broadcast filename into the
// inputs the matching pipeline needs: a path split with pseudo-extension
// handling, a decoration-stripped and width-normalized name, an embedded
// date/time hint, and a bounded-length search title.
//
// The heuristics mirror the legacy renamer exactly, including its scan
// thresholds; they are best-effort, not validators.
//
// Split along these boundaries: chars.go (character tables), split.go,
// decorate.go, width.go, datehint.go, title.go.
package normalize
