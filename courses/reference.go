package courses

import (
	"fmt"
	"strconv"
	"strings"
)

// Width of "SUBJ NNNN"
const referenceWidth = 9

type Reference struct {
	Subject string `json:"subj"`
	Number  int    `json:"code"`
}

func (r Reference) String() string {
	return fmt.Sprintf("%v %04d", r.Subject, r.Number)
}

func isSubject(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, char := range s {
		if char < 'A' || char > 'Z' {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// ParseReference accepts "CSCI 1100" or "CSCI1100".
func ParseReference(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	if len(s) != 8 && len(s) != 9 {
		return Reference{}, fmt.Errorf("invalid course reference '%v'", s)
	}

	subject := s[:4]
	if !isSubject(subject) {
		return Reference{}, fmt.Errorf("invalid course subject '%v'", subject)
	}
	if len(s) == 9 && s[4] != ' ' {
		return Reference{}, fmt.Errorf("invalid course reference '%v'", s)
	}

	code := s[len(s)-4:]
	if !isDigits(code) {
		return Reference{}, fmt.Errorf("invalid course number in '%v'", s)
	}
	number, err := strconv.Atoi(code)
	if err != nil || number <= 0 {
		return Reference{}, fmt.Errorf("invalid course number in '%v'", s)
	}

	return Reference{Subject: subject, Number: number}, nil
}
