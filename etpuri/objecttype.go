package etpuri

import "strings"

// ObjectType identifies the kind of WITSML object an ETP URI addresses.
// The zero value means the URI carries no object segment (or could not be
// classified).
type ObjectType string

// Known object types, in their canonical wire casing.
const (
	TypeWell         ObjectType = "well"
	TypeWellbore     ObjectType = "wellbore"
	TypeLog          ObjectType = "log"
	TypeLogCurveInfo ObjectType = "logCurveInfo"
	TypeChannelSet   ObjectType = "channelSet"
	TypeChannel      ObjectType = "channel"
	TypeMessage      ObjectType = "message"
	TypeTrajectory   ObjectType = "trajectory"
	TypeMudLog       ObjectType = "mudLog"
	TypeRig          ObjectType = "rig"
	TypeFluidsReport ObjectType = "fluidsReport"
)

// canonical maps the lower-cased form of every known type to its canonical
// casing, so classification never depends on the casing a server emits.
var canonical = map[string]ObjectType{}

func init() {
	for _, t := range []ObjectType{
		TypeWell, TypeWellbore, TypeLog, TypeLogCurveInfo, TypeChannelSet,
		TypeChannel, TypeMessage, TypeTrajectory, TypeMudLog, TypeRig,
		TypeFluidsReport,
	} {
		canonical[strings.ToLower(string(t))] = t
	}
}

// describable is the closed set of object types eligible for channel
// description.
var describable = map[ObjectType]struct{}{
	TypeWell:         {},
	TypeWellbore:     {},
	TypeLog:          {},
	TypeLogCurveInfo: {},
	TypeChannelSet:   {},
	TypeChannel:      {},
	TypeMessage:      {},
}

// ParseObjectType normalizes a raw type segment. Known types come back in
// canonical casing; unknown but well-formed types are preserved lower-cased
// so callers can still display them.
func ParseObjectType(raw string) ObjectType {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return ""
	}
	if t, ok := canonical[lower]; ok {
		return t
	}
	return ObjectType(lower)
}

// Describable reports whether the type is eligible for channel-description
// queries.
func (t ObjectType) Describable() bool {
	_, ok := describable[ParseObjectType(string(t))]
	return ok
}

// String returns the canonical string form.
func (t ObjectType) String() string { return string(t) }
