// Package patch realizes virtual trees as host trees and applies patch
// scripts to them.
//
// Create builds a fresh host subtree for a Node. Apply mutates a host tree
// realized from an old Node so that it mirrors the new Node the script was
// diffed against:
//
//	host := patch.Create(old)
//	host = patch.Apply(host, vdom.Diff(old, next))
//
// Apply assumes the host tree still mirrors old. When it does not, Apply
// panics with a coded *errors.VdiffError and leaves the tree partially
// patched.
package patch
