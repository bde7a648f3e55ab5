package domain

import "fmt"

// Unit is the measurement unit of a product entry.
// It is a closed enumeration serialized as its lowercase short tag
// ("ks", "kg", "l") both on the wire and in the database. ParseUnit and
// Unit.String are the single conversion pair shared by both paths.
type Unit string

const (
	UnitKs Unit = "ks" // piece (kus)
	UnitKg Unit = "kg"
	UnitL  Unit = "l"
)

// ParseUnit converts a tag string into a Unit.
// Anything other than the three known tags is rejected.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitKs, UnitKg, UnitL:
		return Unit(s), nil
	default:
		return "", fmt.Errorf("%w: unknown unit %q", ErrValidation, s)
	}
}

func (u Unit) String() string { return string(u) }

// UnmarshalText implements encoding.TextUnmarshaler so JSON decoding
// goes through the same validation as every other boundary.
func (u *Unit) UnmarshalText(b []byte) error {
	parsed, err := ParseUnit(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u), nil
}
