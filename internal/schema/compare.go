package schema

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/rshade/recview/internal/record"
)

// objectString is what a nested value turns into when compared as a primitive.
const objectString = "[object Object]"

// greater reports a > b using loosely typed relational rules: two strings
// compare by UTF-16 code units, anything else compares numerically and a
// NaN on either side is never greater. A missing field behaves as undefined.
func greater(a record.Value, aok bool, b record.Value, bok bool) bool {
	if !aok || !bok {
		return false
	}

	as, aIsStr := primitiveString(a)
	bs, bIsStr := primitiveString(b)
	if aIsStr && bIsStr {
		return slices.Compare(utf16.Encode([]rune(as)), utf16.Encode([]rune(bs))) > 0
	}

	an, bn := toNumber(a), toNumber(b)
	if math.IsNaN(an) || math.IsNaN(bn) {
		return false
	}
	return an > bn
}

func primitiveString(v record.Value) (string, bool) {
	switch v.Kind() {
	case record.KindString:
		return v.Str(), true
	case record.KindNested:
		return objectString, true
	default:
		return "", false
	}
}

func toNumber(v record.Value) float64 {
	switch v.Kind() {
	case record.KindNumber:
		return v.Num()
	case record.KindBool:
		if v.Flag() {
			return 1
		}
		return 0
	case record.KindNull:
		return 0
	case record.KindString:
		return stringToNumber(v.Str())
	default:
		return math.NaN()
	}
}

func stringToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		base := map[byte]int{'x': 16, 'o': 8, 'b': 2}[lower[1]]
		n, err := strconv.ParseUint(s[2:], base, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}

	// ParseFloat is more permissive than needed about these spellings.
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return math.NaN()
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return n
}
