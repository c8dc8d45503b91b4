package etpuri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBaseURI(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"witsml14 root", "eml://witsml14"},
		{"witsml20 root", "eml://witsml20"},
		{"trailing slash", "eml://witsml14/"},
		{"upper-case scheme", "EML://witsml14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Parse(tt.raw)
			assert.True(t, u.IsBaseURI)
			assert.Empty(t, u.ObjectType)
			assert.Empty(t, u.ObjectID)
			assert.Equal(t, tt.raw, u.Raw)
		})
	}
}

func TestParseObjectURI(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantType ObjectType
		wantID   string
	}{
		{"well with id", "eml://witsml14/well(abc123)", TypeWell, "abc123"},
		{"well folder without id", "eml://witsml14/well", TypeWell, ""},
		{"nested wellbore", "eml://witsml14/well(abc123)/wellbore(def456)", TypeWellbore, "def456"},
		{"log under wellbore", "eml://witsml14/well(a)/wellbore(b)/log(c)", TypeLog, "c"},
		{"case-insensitive type", "eml://witsml14/WELL(abc123)", TypeWell, "abc123"},
		{"mixed-case known type", "eml://witsml20/ChannelSet(cs1)", TypeChannelSet, "cs1"},
		{"unknown type preserved", "eml://witsml14/fluid(f1)", ObjectType("fluid"), "f1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Parse(tt.raw)
			assert.False(t, u.IsBaseURI)
			assert.Equal(t, tt.wantType, u.ObjectType)
			assert.Equal(t, tt.wantID, u.ObjectID)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"whitespace only", "   "},
		{"wrong scheme", "http://witsml14/well(abc)"},
		{"scheme only", "eml://"},
		{"bad family", "eml://wit sml/well(a)"},
		{"empty segment", "eml://witsml14//well(a)"},
		{"unbalanced parens", "eml://witsml14/well(abc"},
		{"empty id", "eml://witsml14/well()"},
		{"garbage segment", "eml://witsml14/well(a)/???"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Parse(tt.raw)
			assert.False(t, u.IsBaseURI)
			assert.Empty(t, u.ObjectType)
			assert.Empty(t, u.ObjectID)
			assert.False(t, u.IsValid())
			assert.Equal(t, tt.raw, u.Raw)
		})
	}
}

// Parsing must be deterministic and the id/type invariant must hold for any input.
func TestParseInvariants(t *testing.T) {
	inputs := []string{
		"", "eml://witsml14", "eml://witsml14/well(abc)", "eml://witsml14/well",
		"nonsense", "eml://x/y(z)", "eml://witsml14/log(1)/log(2)",
	}
	for _, raw := range inputs {
		first := Parse(raw)
		second := Parse(raw)
		assert.Equal(t, first, second, "parse of %q is not deterministic", raw)
		if first.ObjectID != "" {
			assert.NotEmpty(t, first.ObjectType, "id without type for %q", raw)
		}
		if first.IsBaseURI {
			assert.Empty(t, first.ObjectType)
			assert.Empty(t, first.ObjectID)
		}
	}
}

func TestObjectTypeDescribable(t *testing.T) {
	for _, typ := range []ObjectType{
		TypeWell, TypeWellbore, TypeLog, TypeLogCurveInfo,
		TypeChannelSet, TypeChannel, TypeMessage,
	} {
		assert.True(t, typ.Describable(), "%s should be describable", typ)
	}

	for _, typ := range []ObjectType{
		TypeTrajectory, TypeMudLog, TypeRig, TypeFluidsReport,
		ObjectType("fluid"), ObjectType(""),
	} {
		assert.False(t, typ.Describable(), "%s should not be describable", typ)
	}

	// Describability must not depend on casing.
	assert.True(t, ObjectType("LOG").Describable())
	assert.True(t, ObjectType("logcurveinfo").Describable())
}
