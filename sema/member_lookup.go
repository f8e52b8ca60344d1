// Package sema implements the semantic analysis passes of the Rowan
// compiler.  The passes here perform member resolution: determining which
// declarations or positional fields a dot access can refer to, how the
// receiver value must be threaded into each candidate, and what typed
// expression the access becomes.
package sema

import (
	"strconv"
	"strings"

	"rowanc/depm"
	"rowanc/report"
	"rowanc/types"
)

// Enumeration of the different kinds of member results.
const (
	// ResultPassReceiver marks an instance member: building its expression
	// requires the original receiver value.
	ResultPassReceiver = iota

	// ResultIgnoreReceiver marks a type-level, static, or module-level
	// member: the receiver is discarded as a value but retained for
	// sequencing.
	ResultIgnoreReceiver

	// ResultTupleField marks a direct positional field of a tuple type.
	ResultTupleField

	// ResultPayloadField marks a positional field of a tuple reached by first
	// unwrapping a transparent variant's payload.
	ResultPayloadField
)

// MemberResult represents one candidate interpretation of a member access.
type MemberResult struct {
	// The kind of the result.  This must be one of the enumerated member
	// result kinds.
	Kind int

	// The matched declaration.  This is nil for field results.
	Decl *types.Decl

	// The index of the matched tuple element.  This is only meaningful for
	// field results.
	FieldIndex int
}

// MemberLookup represents a single member lookup: it owns the ordered
// candidate list for one base type, name, and module query.  The base type,
// the module, and the matched declarations are all borrowed: a lookup never
// mutates them.
type MemberLookup struct {
	// The module the lookup runs within, consulted for extension members.
	mod *depm.Module

	// The accumulated candidates in discovery order.
	results []MemberResult
}

// LookupMember resolves the member name against the base type within the
// given module.  An empty result list means the type has no such member;
// reporting that to the user is the caller's responsibility.  Resolving the
// same query against the same module always yields the same candidate list.
func LookupMember(baseType types.Type, name string, mod *depm.Module) *MemberLookup {
	ml := &MemberLookup{mod: mod}
	ml.dispatch(baseType, name)
	return ml
}

// Found returns whether the lookup resolved at least one candidate.
func (ml *MemberLookup) Found() bool {
	return len(ml.results) > 0
}

// Results returns the candidate list in discovery order.
func (ml *MemberLookup) Results() []MemberResult {
	return ml.results
}

/* -------------------------------------------------------------------------- */

// dispatch routes the lookup based on the shape of the base type.  Every type
// shape must appear below: references recurse on their element type,
// type-value and module references terminate without extension augmentation,
// protocols terminate on their first matching member, and every other shape
// falls through to the module's extension table.
func (ml *MemberLookup) dispatch(baseType types.Type, name string) {
	switch v := baseType.(type) {
	case *types.RefType:
		// Reference wrapping never changes which members exist; whether the
		// results are re-wrapped is decided during synthesis.
		ml.dispatch(v.ElemType, name)
		return

	case *types.MetaType:
		ml.dispatchTypeValue(v, name)
		return

	case *types.ModuleType:
		// Qualified module access: every exported match ignores the receiver.
		// Modules carry no fields and no extension members.
		for _, decl := range v.M.LookupQualified(name) {
			ml.results = append(ml.results, MemberResult{Kind: ResultIgnoreReceiver, Decl: decl})
		}

		return

	case *types.ProtocolType:
		// Scan the protocol's own members in declaration order.  The first
		// name match settles the lookup; a protocol with no match still
		// receives extension members.
		for _, decl := range v.Members {
			if decl.Name != name {
				continue
			}

			if decl.DefKind == types.DefKindFunc && decl.IsStatic {
				ml.results = append(ml.results, MemberResult{Kind: ResultIgnoreReceiver, Decl: decl})
			} else {
				ml.results = append(ml.results, MemberResult{Kind: ResultPassReceiver, Decl: decl})
			}

			return
		}

	case *types.TupleType:
		ml.resolveField(v, name, false)

	case *types.VariantType:
		// A transparent variant exposes its payload tuple's fields as its
		// own.
		if payload, ok := v.TransparentPayload().(*types.TupleType); ok {
			ml.resolveField(payload, name, true)
		}

	case types.PrimitiveType, *types.FuncType:
		// No shape-specific members; extensions still apply.

	default:
		report.ReportICE("member lookup on unknown type shape: %T", baseType)
	}

	ml.augmentFromExtensions(baseType, name)
}

// dispatchTypeValue resolves a member access through a type-value reference:
// the receiver expression denotes a type itself rather than an instance of
// it.
func (ml *MemberLookup) dispatchTypeValue(mt *types.MetaType, name string) {
	// A variant case named by the member resolves to its constructor.
	if vt, ok := mt.Instance.(*types.VariantType); ok {
		if c := vt.CaseByName(name); c != nil {
			ml.results = append(ml.results, MemberResult{Kind: ResultIgnoreReceiver, Decl: c.Decl})
		}
	}

	// Resolve the name against the instance type as if through an instance,
	// then reclassify: there is no instance value behind a type-value, so
	// receiver-passing candidates become receiver-ignoring ones and field
	// candidates are dropped entirely.  The filtered list is rebuilt rather
	// than edited in place.
	ml.dispatch(mt.Instance, name)

	filtered := make([]MemberResult, 0, len(ml.results))
	for _, r := range ml.results {
		switch r.Kind {
		case ResultPassReceiver:
			filtered = append(filtered, MemberResult{Kind: ResultIgnoreReceiver, Decl: r.Decl})
		case ResultIgnoreReceiver:
			filtered = append(filtered, r)
		}
	}

	ml.results = filtered
}

// resolveField resolves a named or positional tuple field access.  At most
// one candidate is appended: a named element match is preferred, then a
// positional `$<digits>` reference.  A malformed or out-of-range position
// simply yields no candidate.
func (ml *MemberLookup) resolveField(tt *types.TupleType, name string, wrapped bool) {
	kind := ResultTupleField
	if wrapped {
		kind = ResultPayloadField
	}

	if index := tt.ElementIndex(name); index != -1 {
		ml.results = append(ml.results, MemberResult{Kind: kind, FieldIndex: index})
		return
	}

	if strings.HasPrefix(name, "$") {
		value, err := strconv.ParseUint(name[1:], 10, 64)
		if err == nil && value < uint64(len(tt.Elements)) {
			ml.results = append(ml.results, MemberResult{Kind: kind, FieldIndex: int(value)})
		}
	}
}

// augmentFromExtensions folds the module's extension members for the base
// type into the candidate list.  Nested type definitions and static
// functions ignore the receiver; everything else is an instance member.
// Matches are appended in registration order with no deduplication: a name
// found both on the type and in an extension produces two candidates and
// flows into the ambiguity path.
func (ml *MemberLookup) augmentFromExtensions(baseType types.Type, name string) {
	for _, decl := range ml.mod.LookupExtensions(baseType, name) {
		if decl.DefKind == types.DefKindType || (decl.DefKind == types.DefKindFunc && decl.IsStatic) {
			ml.results = append(ml.results, MemberResult{Kind: ResultIgnoreReceiver, Decl: decl})
		} else {
			ml.results = append(ml.results, MemberResult{Kind: ResultPassReceiver, Decl: decl})
		}
	}
}
