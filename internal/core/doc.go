// Package core defines the fully explicit language consumed by elaboration.
//
// Every primitive is resolved to a dedicated term: universes (Type, Format,
// Kind), the eighteen binary encodings, the four host value types and the
// boolean constants. Identifiers that name none of these are either item
// references (`item x`) or errors. Literal constants are already converted.
//
// The primitive vocabulary is a read-only table built at package init and
// checked against the enumerations in this package; it is safe to share
// across goroutines.
package core
