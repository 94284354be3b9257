package registry

import "strconv"

// Field constructors. The wizard edits everything as strings; these helpers
// close over the concrete topic/item type and do the conversion at the edge.

func textField[T any](name, label, placeholder string, get func(T) string, set func(T, string) T) Field {
	return Field{
		Name:        name,
		Label:       label,
		Placeholder: placeholder,
		Get:         func(v any) string { return get(v.(T)) },
		Set:         func(v any, s string) any { return set(v.(T), s) },
	}
}

func moneyField[T any](name, label string, get func(T) float64, set func(T, float64) T) Field {
	return Field{
		Name:        name,
		Label:       label,
		Placeholder: "0.00",
		Get: func(v any) string {
			amount := get(v.(T))
			if amount == 0 {
				return ""
			}
			return strconv.FormatFloat(amount, 'f', -1, 64)
		},
		Set: func(v any, s string) any {
			amount, err := strconv.ParseFloat(s, 64)
			if err != nil {
				amount = 0
			}
			return set(v.(T), amount)
		},
	}
}

func boolTextField[T any](name, label string, get func(T) bool, set func(T, bool) T) Field {
	return Field{
		Name:        name,
		Label:       label,
		Placeholder: "ja/nein",
		Get: func(v any) string {
			if get(v.(T)) {
				return "ja"
			}
			return "nein"
		},
		Set: func(v any, s string) any {
			return set(v.(T), s == "ja" || s == "j" || s == "true")
		},
	}
}
