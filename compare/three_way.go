package compare

import (
	"cmp"
	"fmt"
	"strings"
	"time"
)

// Ordered is a three-way comparison of two ordered values. NaN operands are
// placed after every other value regardless of direction; two NaNs compare
// equal so a stable sort keeps them in input order.
func Ordered[T cmp.Ordered](a, b T, descending bool) int {
	aNaN, bNaN := a != a, b != b //nolint:gocritic

	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}

	c := cmp.Compare(a, b)
	if descending {
		return -c
	}

	return c
}

// numbers compares two KindNumber values. Two integers compare exactly, even
// across signedness; anything involving a float compares as float64 with
// Ordered's NaN rule.
func numbers(a, b Value, descending bool) int {
	var c int

	switch {
	case a.rep == repFloat || b.rep == repFloat:
		return Ordered(a.num, b.num, descending)
	case a.rep == repSigned && b.rep == repSigned:
		c = cmp.Compare(a.i, b.i)
	case a.rep == repUnsigned && b.rep == repUnsigned:
		c = cmp.Compare(a.u, b.u)
	case a.rep == repSigned:
		c = signedVsUnsigned(a.i, b.u)
	default:
		c = -signedVsUnsigned(b.i, a.u)
	}

	if descending {
		return -c
	}

	return c
}

func signedVsUnsigned(i int64, u uint64) int {
	if i < 0 {
		return -1
	}

	return cmp.Compare(uint64(i), u)
}

// Options configures Values.
type Options struct {
	// Descending negates the result of every branch.
	Descending bool

	// Text compares two KindText payloads. When nil, byte order is used.
	Text func(a, b string) int
}

// Values compares two tagged values. Both numbers: numeric order. Both text:
// Options.Text. Anything else: the generic comparator Any.
func Values(a, b Value, opts Options) int {
	if a.kind == KindNumber && b.kind == KindNumber {
		return numbers(a, b, opts.Descending)
	}

	var c int

	if a.kind == KindText && b.kind == KindText {
		if opts.Text != nil {
			c = opts.Text(a.text, b.text)
		} else {
			c = strings.Compare(a.text, b.text)
		}
	} else {
		c = Any(a.raw, b.raw)
	}

	if opts.Descending {
		return -c
	}

	return c
}

// Ranks used by Any when the two operands are of different classes.
const (
	rankBool = iota
	rankNumber
	rankString
	rankTime
	rankOther
	rankNil
)

// Any is the generic three-way comparator. It never panics and always yields
// the same result for the same operands.
//
// Operands of different classes are ordered bool < number < string < time <
// other < nil. Within a class: false < true, numbers numerically (NaN last),
// strings by bytes, times by instant, and other values by their fmt.Sprint text.
func Any(a, b any) int {
	a, b = unwrap(a), unwrap(b)

	ra, rb := classify(a), classify(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankNil:
		return 0
	case rankBool:
		ab, bb := a.(bool), b.(bool) //nolint:forcetypeassert

		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		default:
			return 1
		}
	case rankNumber:
		return numbers(Of(a), Of(b), false)
	case rankString:
		return strings.Compare(Of(a).text, Of(b).text)
	case rankTime:
		return a.(time.Time).Compare(b.(time.Time)) //nolint:forcetypeassert
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func classify(v any) int {
	switch v.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case time.Time:
		return rankTime
	}

	switch Of(v).kind {
	case KindNumber:
		return rankNumber
	case KindText:
		return rankString
	default:
		return rankOther
	}
}

func unwrap(v any) any {
	if val, ok := v.(Value); ok {
		return val.raw
	}

	return v
}
