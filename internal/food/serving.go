package food

import "strconv"

// FormatServing merges a serving size and unit into one description string,
// e.g. ("1", "cup") -> "1cup". Gram servings whose size truncates to an
// integer greater than one are rendered with the truncated integer, so
// ("100.0", "g") -> "100g". Fractional gram sizes that truncate to 1 or less
// keep their original text; the guard is carried over from the data this
// replaces and is not a rounding rule.
func FormatServing(size, unit string) string {
	if unit == "g" {
		if f, err := strconv.ParseFloat(size, 64); err == nil {
			if n := int(f); n > 1 {
				return strconv.Itoa(n) + "g"
			}
		}
	}
	return size + unit
}
