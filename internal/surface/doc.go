// Package surface defines the AST of the user-facing language.
//
// Nothing in a surface tree is resolved: every identifier is a Name and
// universes never appear. Trees are built once by the parser and never
// mutated; each node is reachable from exactly one parent.
package surface
