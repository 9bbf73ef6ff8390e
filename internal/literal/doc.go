// Package literal holds raw literal payloads and their fallible conversions.
//
// Literals keep the exact lexical text plus the metadata needed to interpret
// it later (sign, radix, suffix). Splitting never fails; conversion does, and
// reports why through wrapped sentinel errors so callers can turn a failure
// into a diagnostic instead of aborting.
package literal
