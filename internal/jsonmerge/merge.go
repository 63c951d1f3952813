package jsonmerge

// Merge merges source into target and returns the result. For each key
// in source: plain-object values are merged recursively into the
// corresponding target value (treated as empty when absent or not an
// object), everything else — scalars, arrays, null — overwrites the
// target value. Keys present only in target are left untouched.
//
// The target map is mutated and returned; a nil target is treated as
// an empty object.
func Merge(target, source map[string]any) map[string]any {
	if target == nil {
		target = make(map[string]any, len(source))
	}
	for key, value := range source {
		if sub, ok := value.(map[string]any); ok {
			existing, _ := target[key].(map[string]any)
			target[key] = Merge(existing, sub)
			continue
		}
		target[key] = value
	}
	return target
}

// Omit returns a shallow copy of obj with the listed top-level keys
// removed. Keys not present in obj are ignored; an empty key list
// yields an identical copy.
func Omit(keys []string, obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
