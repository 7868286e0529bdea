package config

import "slices"

// Merge deep-merges two configuration layers, with local overriding
// global. The rules are per-path:
//
//   - objects merge key-wise: keys only in global are kept, keys only in
//     local are added, keys in both recurse;
//   - arrays and scalars are replaced wholesale by local's value;
//   - on a type mismatch (object on one side, something else on the
//     other) local wins at that level of the tree.
//
// Merging never fails on well-formed input. Neither argument is modified;
// the result shares no mutable structure with either.
func Merge(global, local Document) Document {
	root, _ := mergeValue(global.root, local.root).(map[string]any)
	if root == nil {
		root = map[string]any{}
	}
	return Document{
		root:        root,
		serverOrder: mergeServerOrder(global.serverOrder, local.serverOrder),
	}
}

// mergeValue merges a single value pair. Recursion stops as soon as
// either side is not an object, at which point the override wins.
func mergeValue(base, override any) any {
	baseObj, baseOK := base.(map[string]any)
	overObj, overOK := override.(map[string]any)
	if !baseOK || !overOK {
		return cloneValue(override)
	}

	out := make(map[string]any, len(baseObj)+len(overObj))
	for k, v := range baseObj {
		out[k] = cloneValue(v)
	}
	for k, v := range overObj {
		if bv, ok := baseObj[k]; ok {
			out[k] = mergeValue(bv, v)
		} else {
			out[k] = cloneValue(v)
		}
	}
	return out
}

// cloneValue deep-copies a decoded JSON value. Scalars are immutable and
// returned as-is.
func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// mergeServerOrder keeps global's positions for names in both layers and
// appends local-only names in local's order, mirroring JSON object update
// semantics.
func mergeServerOrder(global, local []string) []string {
	out := slices.Clone(global)
	for _, name := range local {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}
