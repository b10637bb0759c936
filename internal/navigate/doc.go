// Package navigate walks a value tree along a parsed index path.
//
// Two lookup policies exist. Lookup mirrors the historical behavior:
// any miss (wrong kind, absent key, out-of-range index) silently
// degrades to the empty value. LookupStrict fails fast and names the
// offending segment. Callers that can tolerate a misspelled key turning
// into an empty literal use Lookup; everything else should be strict.
package navigate
