// Package tokens models a persisted design-token document.
//
// Documents follow the DTCG convention: a leaf token is any object carrying
// both a "$type" and a "$value" field. Every other object is a group whose
// children are walked recursively. Keys beginning with "$" and the literal
// "metadata" key are reserved and skipped at every level.
//
// # Flattening
//
// Flatten walks a Document depth-first in pre-order and returns one Token per
// leaf. Sibling keys are visited in sorted order, so the output is stable for
// a given document. Each Token carries its dot-delimited Path, its Group (the
// ancestor path, or "(root)" for top-level tokens) and its leaf Name.
//
// # Formatting
//
// FormatValue renders a token value for display. It switches over every known
// Kind and falls back to a JSON rendering for kinds it does not know, so new
// kinds degrade instead of failing.
//
// # Usage
//
//	doc, err := tokens.Parse(data)
//	if err != nil {
//	    return err
//	}
//	flat := tokens.Flatten(doc)
//	summary := tokens.Summarize(flat)
package tokens
