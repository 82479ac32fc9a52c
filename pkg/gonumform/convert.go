package gonumform

import "fmt"

// FromText is the string→gonum matrix converter.
func FromText(q any) (any, error) {
	s, ok := q.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type %T for the string form", q)
	}
	return ParseText(s)
}

// ToText is the gonum→string matrix converter.
func ToText(q any) (any, error) {
	gq, ok := q.(*Quantity)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type %T for the gonum form", q)
	}
	return gq.String(), nil
}

// IsPayload reports whether q is a gonum-form payload.
func IsPayload(q any) bool {
	_, ok := q.(*Quantity)
	return ok
}
