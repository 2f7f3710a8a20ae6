// Package session holds the state a host UI needs between user
// actions: the current graph, its file path, dirty flag, editing
// parameters, and convenience accessors for the algorithm engine's
// iterator factories.
//
// Session is a constructed service type rather than a process-wide
// global: callers construct one with New and thread it explicitly,
// per the re-expressed singleton in SPEC_FULL.md's Design Notes.
package session
