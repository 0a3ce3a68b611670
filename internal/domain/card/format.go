package card

import "regexp"

// Per-brand code shapes. Anchored so partial matches never pass.
var formats = map[Type]*regexp.Regexp{
	TypeDemoCard:    regexp.MustCompile(`^DEMO-\d{4}-\d{4}-\d{4}$`),
	TypeSampleTunes: regexp.MustCompile(`^ST-\d{12}$`),
	TypeMockFlix:    regexp.MustCompile(`^MF-[A-Za-z0-9]{4}-[A-Za-z0-9]{4}$`),
}

// MatchesFormat reports whether a code has the shape required by the
// card type. A false result is a soft rejection: the attempt is still
// audited, but never consults the ledger.
func MatchesFormat(t Type, c Code) bool {
	re, ok := formats[t]
	if !ok {
		return false
	}
	return re.MatchString(c.String())
}
