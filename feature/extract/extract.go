package extract

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"locsync/core/termstore"
)

// Options controls how keys are extracted from a declaration file.
type Options struct {
	// Enum is the name of the enumeration to scope extraction to.
	// If empty, the first enumeration in the file is used.
	Enum string

	// Lowercase applies a lowercasing transform to every extracted key.
	Lowercase bool
}

// ParseError means the declaration file could not be located or does not
// match the expected identifier-listing grammar.
type ParseError struct {
	Path   string
	Line   int
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("parse %s: %s: %v", e.Path, e.Detail, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("parse %s:%d: %s", e.Path, e.Line, e.Detail)
	default:
		return fmt.Sprintf("parse %s: %s", e.Path, e.Detail)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// enumHeader matches an enumeration declaration, with optional modifiers
// before the keyword, e.g. "public enum LocalizationKey: String {".
var enumHeader = regexp.MustCompile(`(?:^|\s)enum\s+(\w+)`)

// LoadFile reads a declaration file and extracts its key set.
func LoadFile(path string, opts Options) (termstore.KeySet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Detail: "cannot read declaration file", Err: err}
	}
	set, err := Extract(string(content), opts)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return set, nil
}

// Extract parses declaration file content and returns the set of keys
// declared as cases of the scoped enumeration. Extraction is deterministic:
// identical content and options always yield an equal set.
func Extract(content string, opts Options) (termstore.KeySet, error) {
	set := termstore.NewKeySet()

	lines := strings.Split(content, "\n")
	depth := 0 // brace depth inside the matched enum, 0 = not entered
	found := false
	done := false

	for i, raw := range lines {
		line := stripComment(raw)

		if !found {
			loc := enumHeader.FindStringSubmatchIndex(line)
			if loc == nil {
				continue
			}
			if opts.Enum != "" && line[loc[2]:loc[3]] != opts.Enum {
				continue
			}
			found = true
			// The opening brace may sit on the header line or a later one.
			rest := line[loc[1]:]
			if idx := strings.Index(rest, "{"); idx >= 0 {
				depth = 1
				if err := consumeBody(rest[idx+1:], i+1, &depth, opts, set); err != nil {
					return nil, err
				}
				if depth == 0 {
					done = true
					break
				}
			}
			continue
		}

		if depth == 0 {
			// Between the header and its opening brace.
			if idx := strings.Index(line, "{"); idx >= 0 {
				depth = 1
				line = line[idx+1:]
			} else {
				continue
			}
		}

		if err := consumeBody(line, i+1, &depth, opts, set); err != nil {
			return nil, err
		}
		if depth == 0 {
			done = true
			break
		}
	}

	if !found {
		if opts.Enum != "" {
			return nil, &ParseError{Detail: fmt.Sprintf("no enum named %q found", opts.Enum)}
		}
		return nil, &ParseError{Detail: "no enum declaration found"}
	}
	if !done {
		return nil, &ParseError{Detail: "unterminated enum block"}
	}
	return set, nil
}

// consumeBody processes one line of enum body text, collecting case
// identifiers declared at the top level of the block and tracking brace
// depth across nested members.
func consumeBody(line string, lineNo int, depth *int, opts Options, set termstore.KeySet) error {
	trimmed := strings.TrimSpace(line)

	// Only direct members of the enum are keys; cases of nested types are
	// a different namespace.
	if *depth == 1 && (trimmed == "case" || strings.HasPrefix(trimmed, "case ")) {
		decl := strings.TrimSpace(strings.TrimPrefix(trimmed, "case"))
		// A one-line body keeps the closing brace on the case line.
		if idx := strings.IndexAny(decl, "{}"); idx >= 0 {
			decl = strings.TrimSpace(decl[:idx])
		}
		if decl == "" {
			return &ParseError{Line: lineNo, Detail: "case declaration without identifier"}
		}
		if err := collectCases(decl, lineNo, opts, set); err != nil {
			return err
		}
	}

	for _, r := range line {
		switch r {
		case '{':
			*depth++
		case '}':
			*depth--
			if *depth == 0 {
				return nil
			}
		}
	}
	return nil
}

// collectCases parses the declaration list of a single case line, e.g.
// "welcomeTitle", "retry = \"retry_button\"", or "ok, cancel, done".
func collectCases(decl string, lineNo int, opts Options, set termstore.KeySet) error {
	for _, part := range strings.Split(decl, ",") {
		ident := strings.TrimSpace(part)

		// Drop a raw value or associated payload; the identifier is the key.
		if idx := strings.IndexAny(ident, "=("); idx >= 0 {
			ident = strings.TrimSpace(ident[:idx])
		}
		ident = strings.Trim(ident, "`")

		// A whitespace-only entry in a comma list collapses silently,
		// matching the set's treatment of duplicates.
		if ident == "" && strings.TrimSpace(part) == "" {
			continue
		}
		if ident == "" || !isIdentifier(ident) {
			return &ParseError{Line: lineNo, Detail: fmt.Sprintf("malformed case declaration %q", strings.TrimSpace(part))}
		}

		if opts.Lowercase {
			ident = strings.ToLower(ident)
		}
		set.Add(ident)
	}
	return nil
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// stripComment removes a trailing line comment. Raw values in case lines are
// plain identifiers or quoted strings without slashes, so a naive cut is safe
// here.
func stripComment(line string) string {
	if idx := strings.Index(line, "//"); idx >= 0 {
		return line[:idx]
	}
	return line
}
