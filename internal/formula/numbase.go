package formula

import (
	"math"
	"strconv"
	"strings"
)

// BaseConversion is a whole number rewritten in another base.
type BaseConversion struct {
	Input   string `json:"input"`
	From    int    `json:"fromBase"`
	To      int    `json:"toBase"`
	Decimal int64  `json:"decimal"`
	Result  string `json:"result"`
}

// ConvertBase rewrites a whole number written in base `from` into base `to`.
// Both bases must be between 2 and 10, as in the number bases chapter.
func ConvertBase(value string, from, to float64) (BaseConversion, error) {
	f, err := base(from)
	if err != nil {
		return BaseConversion{}, err
	}
	t, err := base(to)
	if err != nil {
		return BaseConversion{}, err
	}
	digits := strings.TrimSpace(value)
	if digits == "" {
		return BaseConversion{}, invalid("a number is required")
	}
	n, err := strconv.ParseInt(digits, f, 64)
	if err != nil {
		return BaseConversion{}, invalid("%q is not a whole number in base %d", digits, f)
	}
	return BaseConversion{
		Input:   digits,
		From:    f,
		To:      t,
		Decimal: n,
		Result:  strconv.FormatInt(n, t),
	}, nil
}

func base(b float64) (int, error) {
	if b != math.Trunc(b) || b < 2 || b > 10 {
		return 0, invalid("bases must be whole numbers from 2 to 10")
	}
	return int(b), nil
}
