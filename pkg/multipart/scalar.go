package multipart

import "strconv"

// String renders the scalar's textual representation the way the encoder
// writes it into a part body: integers and floats use their natural
// decimal form, booleans render as "true"/"false".
func (s Scalar) String() string {
	switch s.kind {
	case scalarString:
		return s.s
	case scalarInt:
		return strconv.FormatInt(s.i, 10)
	case scalarFloat:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	case scalarBool:
		return strconv.FormatBool(s.b)
	default:
		return ""
	}
}
