// Package extract parses a local declaration file and yields the canonical
// set of localization keys it declares.
//
// The declaration file is a Swift-style source file whose keys are the case
// identifiers of one enumeration. Extraction can be scoped to a named enum
// and can apply a uniform lowercasing transform. Duplicate and repeated
// identifiers collapse silently into the set; malformed case lines and
// missing or unterminated enum blocks fail with *ParseError.
package extract
