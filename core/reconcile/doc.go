// Package reconcile classifies a live variable snapshot against a persisted
// token document.
//
// The two sides are shaped differently: design-tool variables live in named
// collections with slash-nested names ("primary/500" in "Colors"), while
// document tokens carry dot-nested paths ("colors.primary.500"). The engine
// maps both onto a canonical match key and labels every input with exactly one
// status.
//
// # Statuses
//
//   - synced: both sides present and their normalized values are equal
//   - needs-sync: both sides present, values differ (drift)
//   - variable-only: the variable has no token at its match key
//   - token-only: the token has no variable at its path
//
// # Guarantees
//
// Compare is a pure function of its inputs. Every variable and every token
// lands in exactly one Item, the Summary counts add up to len(Items), and
// items are sorted by (collection, match key, id), so identical inputs produce
// deep-equal results. Nothing is merged or written back.
//
// # Modes
//
// Variables carry one value per mode. When no mode is selected the engine uses
// the first mode name found while scanning the snapshot's variables in order.
// A variable without a value for the effective mode is compared by its
// default value.
//
// # Duplicate Keys
//
// Two inputs on the same side that normalize to one match key collide. The
// last one wins the lookup slot; the shadowed ones are still reported
// (variable-only or token-only) and the key is listed in Result.Duplicates.
// CompareStrict turns any collision into a DuplicateKeyError.
//
// # Usage
//
//	flat := tokens.Flatten(doc)
//	result := reconcile.Compare(snapshot, flat, "")
//	fmt.Println(result.Summary.NeedsSync)
package reconcile
