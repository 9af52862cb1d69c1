package courses

import (
	"fmt"
	"strings"
)

// Offered is the set of terms a course is offered in.
type Offered uint8

const (
	OfferedSpring Offered = 1 << iota
	OfferedSummer
	OfferedFall
	OfferedEven
	OfferedOdd
)

// ClassLevel is the set of class standings a course's requisites mention.
type ClassLevel uint8

const (
	ClassLevelFreshman ClassLevel = 1 << iota
	ClassLevelSophomore
	ClassLevelJunior
	ClassLevelSenior
	ClassLevelGraduate
)

type flagKeyword struct {
	keyword string
	letter  byte
}

// Index i describes flag 1 << i
var offeredKeywords = []flagKeyword{
	{"spring", 's'},
	{"summer", 'u'},
	{"fall", 'f'},
	{"even", 'e'},
	{"odd", 'o'},
}

var classLevelKeywords = []flagKeyword{
	{"freshman", 'f'},
	{"sophomore", 'o'},
	{"junior", 'j'},
	{"senior", 's'},
	{"graduate", 'g'},
}

func classify(text string, keywords []flagKeyword) uint8 {
	lower := strings.ToLower(text)

	var flags uint8
	for i, k := range keywords {
		if strings.Contains(lower, k.keyword) {
			flags |= 1 << i
		}
	}
	return flags
}

func formatFlags(flags uint8, keywords []flagKeyword) string {
	var builder strings.Builder
	for i, k := range keywords {
		if flags&(1<<i) != 0 {
			builder.WriteByte(k.letter)
		}
	}
	return builder.String()
}

func parseFlags(text string, keywords []flagKeyword) (uint8, error) {
	var flags uint8
	for _, char := range []byte(text) {
		found := false
		for i, k := range keywords {
			if k.letter == char {
				flags |= 1 << i
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown flag '%c' in '%v'", char, text)
		}
	}
	return flags, nil
}

// ClassifyOffered maps a "When Offered:" value to its term flags.
func ClassifyOffered(text string) Offered {
	return Offered(classify(text, offeredKeywords))
}

// ClassifyClassLevel maps requisite prose to the class standings it mentions.
func ClassifyClassLevel(text string) ClassLevel {
	return ClassLevel(classify(text, classLevelKeywords))
}

func (o Offered) Has(flag Offered) bool {
	return o&flag == flag
}

func (o Offered) String() string {
	return formatFlags(uint8(o), offeredKeywords)
}

func (o Offered) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Offered) UnmarshalText(text []byte) error {
	flags, err := parseFlags(string(text), offeredKeywords)
	if err != nil {
		return err
	}
	*o = Offered(flags)
	return nil
}

func (c ClassLevel) Has(flag ClassLevel) bool {
	return c&flag == flag
}

func (c ClassLevel) String() string {
	return formatFlags(uint8(c), classLevelKeywords)
}

func (c ClassLevel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ClassLevel) UnmarshalText(text []byte) error {
	flags, err := parseFlags(string(text), classLevelKeywords)
	if err != nil {
		return err
	}
	*c = ClassLevel(flags)
	return nil
}
