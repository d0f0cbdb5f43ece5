// Package dux aggregates disk usage for paths matched by a glob pattern.
//
// It expands the pattern with doublestar, walks each matched root with
// fastwalk for parallel traversal, and reports per-root size and entry
// counts alongside a grand total over every expanded path. Symlinks are
// never followed; their own link metadata is counted instead.
package dux
