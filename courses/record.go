package courses

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyInput      = errors.New("no course fragments")
	ErrMalformedHeader = errors.New("malformed course header")
)

// Record is one parsed course. Records are built by Parse and are not
// modified afterwards.
type Record struct {
	Reference     Reference  `json:"reference"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Offered       Offered    `json:"offered"`
	ClassLevel    ClassLevel `json:"class_level"`
	Prerequisites Expression `json:"prerequisites"`
	Corequisites  Expression `json:"corequisites"`
	Complete      bool       `json:"complete"`

	// Reserved for post-requisite linkage; the parser leaves it empty.
	ExtensionSlots []Reference `json:"extension_slots"`
}

const (
	headerDelimiter       = " - "
	strictHeaderDelimiter = "-"
)

// Linked course codes arrive as their own fragments, so the requisite
// fragments are rejoined into the sentence they came from.
const requisiteJoiner = " "

func newRecord(reference Reference, title string) Record {
	return Record{
		Reference:      reference,
		Title:          title,
		Prerequisites:  Expression{},
		Corequisites:   Expression{},
		Complete:       true,
		ExtensionSlots: []Reference{},
	}
}

// ParseHeader reads "SUBJ NNNN - Title".
func ParseHeader(header string) (Reference, string, error) {
	code, title, found := strings.Cut(header, headerDelimiter)
	if !found {
		code, title, _ = strings.Cut(header, strictHeaderDelimiter)
	}
	code = strings.TrimSpace(code)
	title = strings.TrimSpace(title)

	if len(code) > referenceWidth || len(code) < 6 {
		return Reference{}, "", fmt.Errorf("%w: course code '%v'", ErrMalformedHeader, code)
	}

	subject := code[:4]
	if !isSubject(subject) {
		return Reference{}, "", fmt.Errorf("%w: subject '%v'", ErrMalformedHeader, subject)
	}

	numberText := strings.TrimSpace(code[4:])
	if !isDigits(numberText) {
		return Reference{}, "", fmt.Errorf("%w: number '%v'", ErrMalformedHeader, numberText)
	}
	number, err := strconv.Atoi(numberText)
	if err != nil || number <= 0 {
		return Reference{}, "", fmt.Errorf("%w: number '%v'", ErrMalformedHeader, numberText)
	}

	return Reference{Subject: subject, Number: number}, title, nil
}

// Parse builds a course record from the text fragments of its detail page.
// The first fragment is "SUBJ NNNN - Title", the second the description and
// the rest label/value pairs. Parse is safe for concurrent use.
func Parse(fragments []string) (Record, error) {
	if len(fragments) == 0 {
		return Record{}, ErrEmptyInput
	}

	reference, title, err := ParseHeader(fragments[0])
	if err != nil {
		return Record{}, err
	}

	record := newRecord(reference, title)
	if len(fragments) == 1 {
		return record, nil
	}
	record.Description = fragments[1]

	fields := ScanFields(fragments[2:])
	requisiteText := strings.Join(fields.Requisites, requisiteJoiner)

	record.Offered = fields.Offered
	record.ClassLevel = ClassifyClassLevel(requisiteText)
	record.Prerequisites, record.Corequisites = ParseRequisites(requisiteText)

	return record, nil
}
