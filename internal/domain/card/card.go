package card

import (
	"strings"

	"giftsafer/internal/pkg/errs"
)

var ErrUnknownType = errs.New("unknown card type")

// Type identifies a supported gift card brand.
type Type string

const (
	TypeDemoCard    Type = "DemoCard"
	TypeSampleTunes Type = "SampleTunes"
	TypeMockFlix    Type = "MockFlix"
)

// ParseType validates a client-supplied card type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeDemoCard, TypeSampleTunes, TypeMockFlix:
		return Type(s), nil
	default:
		return "", ErrUnknownType
	}
}

func (t Type) String() string {
	return string(t)
}

// Status is the audit status recorded for a check attempt.
type Status string

const (
	StatusRateLimited Status = "rate_limited"
	StatusInvalid     Status = "invalid"
	StatusUsed        Status = "used"
	StatusValid       Status = "valid"
)

func (s Status) String() string {
	return string(s)
}

// Code is a normalized gift card code. Normalization trims surrounding
// whitespace and upper-cases, so "demo-1234-..." and "DEMO-1234-..."
// are the same code for uniqueness purposes.
type Code string

func NewCode(raw string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(raw)))
}

func (c Code) IsEmpty() bool {
	return c == ""
}

func (c Code) String() string {
	return string(c)
}

// Masked hides all but the last four characters. Codes of four
// characters or fewer are fully masked.
func (c Code) Masked() string {
	s := string(c)
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
