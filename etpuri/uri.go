// Package etpuri parses ETP resource URIs into their structural parts.
//
// An ETP URI addresses either a store family root ("eml://witsml14") or an
// object within it ("eml://witsml14/well(abc123)/wellbore(def456)"). Parsing
// is total: malformed input yields a URI whose classification fields are all
// empty, which downstream command gating treats as "unusable", never as an
// error to propagate.
package etpuri

import (
	"regexp"
	"strings"
)

// URI is the parsed, immutable form of an ETP resource address.
type URI struct {
	Raw        string     // the input string, verbatim
	IsBaseURI  bool       // true for the family-root form with no object segment
	ObjectType ObjectType // type of the last object segment, empty when unclassified
	ObjectID   string     // identifier of the last object segment, may be empty
}

// IsValid reports whether parsing classified the address at all.
func (u URI) IsValid() bool { return u.IsBaseURI || u.ObjectType != "" }

// HasObjectID reports whether the address resolves to one specific object.
func (u URI) HasObjectID() bool { return u.ObjectID != "" }

// segmentPattern matches one hierarchy segment: an object type optionally
// followed by a parenthesized identifier, e.g. "well" or "well(abc123)".
var segmentPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)(?:\(([^()]+)\))?$`)

// familyPattern matches the data-family part of the authority, e.g. "witsml14".
var familyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._-]*$`)

const scheme = "eml://"

// Parse converts a raw address string into a URI. It is pure, deterministic
// and never fails: input that does not match the ETP URI grammar produces a
// URI carrying only the raw string.
func Parse(raw string) URI {
	u := URI{Raw: raw}

	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < len(scheme) || !strings.EqualFold(trimmed[:len(scheme)], scheme) {
		return u
	}

	rest := strings.TrimSuffix(trimmed[len(scheme):], "/")
	family, path, hasPath := strings.Cut(rest, "/")
	if !familyPattern.MatchString(family) {
		return u
	}

	if !hasPath {
		u.IsBaseURI = true
		return u
	}

	// Every segment must be well formed for the address to classify; the
	// last segment decides the object type and id.
	var objectType ObjectType
	var objectID string
	for _, seg := range strings.Split(path, "/") {
		m := segmentPattern.FindStringSubmatch(seg)
		if m == nil {
			return u
		}
		objectType = ParseObjectType(m[1])
		objectID = m[2]
	}

	u.ObjectType = objectType
	u.ObjectID = objectID
	return u
}
