// Package project resolves the directory that anchors a project's audit
// state.
//
// Resolution is a pure function of an explicit working directory rather
// than hidden process globals, so commands and tests can resolve roots
// for arbitrary directories. Resolve never fails; when no project
// boundary can be found it falls back to the working directory itself,
// because a best-effort audit hook must always have somewhere to write.
package project
