// Package registry turns scanned component records into the ID registry:
// category and family descriptors with member lists and next-free-ID
// suggestions, plus the serialized snapshots and the rendered summary page.
//
// A Ruleset carries the validated configuration (known categories, reserved
// family ranges). Construction rejects overlapping ranges up front, so a
// Ruleset in hand is always safe to aggregate with. Aggregate is a pure
// function over the record set: stable sorts everywhere, the timestamp is
// supplied by the caller, and diagnostics are collected on the Result
// instead of aborting, so the page can always render a best-effort registry.
//
// Keep allocation policy here and in internal/domain; adapters and commands
// should never compute IDs on their own.
package registry
