package config

import "fmt"

// Method is one of the fixed repository method names a template can render.
type Method string

// CRUD base methods.
const (
	MethodGet        Method = "get"
	MethodGetOrRaise Method = "get_or_raise"
	MethodList       Method = "list"
	MethodFindOne    Method = "find_one"
	MethodCreate     Method = "create"
	MethodUpdate     Method = "update"
	MethodDelete     Method = "delete"
	MethodDeleteByID Method = "delete_by_id"
	MethodExists     Method = "exists"
	MethodCount      Method = "count"
)

// Method presets.
const (
	PresetAll  Method = "all"
	PresetNone Method = "none"
)

// CRUDMethods is the full method vocabulary in canonical render order.
var CRUDMethods = []Method{
	MethodGet,
	MethodGetOrRaise,
	MethodList,
	MethodFindOne,
	MethodCreate,
	MethodUpdate,
	MethodDelete,
	MethodDeleteByID,
	MethodExists,
	MethodCount,
}

// DefaultMethods is the method set applied when a model omits `methods`.
var DefaultMethods = []Method{
	MethodGet,
	MethodList,
	MethodCreate,
	MethodUpdate,
	MethodDelete,
}

// NormalizeMethods validates a raw method list against the vocabulary and
// returns it normalized: presets expanded, duplicates dropped, canonical
// order enforced. `get_or_raise` and `delete_by_id` call `get` in the
// rendered bodies, so `get` is inserted when either is present without it.
func NormalizeMethods(raw []Method) ([]Method, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	for _, m := range raw {
		if m == PresetNone {
			return []Method{}, nil
		}
	}
	selected := make(map[Method]bool, len(raw))
	for _, m := range raw {
		if m == PresetAll {
			for _, c := range CRUDMethods {
				selected[c] = true
			}
			continue
		}
		if !isCRUDMethod(m) {
			return nil, &Error{Reason: fmt.Sprintf("invalid method: %s", m)}
		}
		selected[m] = true
	}
	if selected[MethodGetOrRaise] || selected[MethodDeleteByID] {
		selected[MethodGet] = true
	}
	result := make([]Method, 0, len(selected))
	for _, c := range CRUDMethods {
		if selected[c] {
			result = append(result, c)
		}
	}
	return result, nil
}

func isCRUDMethod(m Method) bool {
	for _, c := range CRUDMethods {
		if m == c {
			return true
		}
	}
	return false
}
