package courses

import (
	"regexp"
	"strconv"
	"strings"
)

// Group is satisfied when any of its courses is.
type Group []Reference

// Expression is satisfied when all of its groups are. An empty expression
// has no requirement.
type Expression []Group

// References flattens the expression in order.
func (e Expression) References() []Reference {
	var references []Reference
	for _, group := range e {
		references = append(references, group...)
	}
	return references
}

// No leading 'C' in case the capitalization changes
const corequisiteMarker = "orequisite"

const (
	andDelimiter      = " and "
	orDelimiter       = " or "
	permissionKeyword = " permission "
)

var referencePattern = regexp.MustCompile(`([A-Z]{4})\s+(\d{4})`)

// ParseRequisites splits raw requisite text into its prerequisite and
// corequisite halves and parses each into an Expression.
func ParseRequisites(text string) (prerequisites Expression, corequisites Expression) {
	prerequisiteText, corequisiteText, found := strings.Cut(text, corequisiteMarker)

	prerequisites = ParseExpression(prerequisiteText)
	if found {
		corequisites = ParseExpression(corequisiteText)
	} else {
		corequisites = Expression{}
	}
	return prerequisites, corequisites
}

// ParseExpression reads "A and B or C" style prose as [[A], [B, C]].
//
// A clause holding " or " forms one group from all of its courses unless it
// also holds " permission ", in which case each course stands alone:
// "MATH 1010 or permission of instructor" is [[MATH 1010]].
func ParseExpression(text string) Expression {
	expression := Expression{}

	for _, clause := range strings.Split(text, andDelimiter) {
		references := findReferences(clause)
		if len(references) == 0 {
			continue
		}

		if strings.Contains(clause, orDelimiter) && !strings.Contains(clause, permissionKeyword) {
			expression = append(expression, Group(references))
			continue
		}

		for _, reference := range references {
			expression = append(expression, Group{reference})
		}
	}

	return expression
}

func findReferences(clause string) []Reference {
	var references []Reference
	for _, submatches := range referencePattern.FindAllStringSubmatch(clause, -1) {
		number, err := strconv.Atoi(submatches[2])
		if err != nil || number <= 0 {
			continue
		}
		references = append(references, Reference{Subject: submatches[1], Number: number})
	}
	return references
}
