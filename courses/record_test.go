package courses

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dataStructuresFragments = []string{
	"CSCI 1200 - Data Structures",
	"Programming concepts: functions, parameter passing, pointers, arrays, strings, structs, classes.",
	"Prerequisites/Corequisites:",
	"Prerequisite: CSCI 1100 or ENGR 1200 and MATH 1010 or permission of instructor. Corequisite: CSCI 1190.",
	"When Offered:",
	"Fall and Spring, odd years",
	"Credit Hours:",
	"4",
}

func TestParse(t *testing.T) {
	record, err := Parse(dataStructuresFragments)
	require.NoError(t, err)

	expected := Record{
		Reference:   ref("CSCI", 1200),
		Title:       "Data Structures",
		Description: "Programming concepts: functions, parameter passing, pointers, arrays, strings, structs, classes.",
		Offered:     OfferedFall | OfferedSpring | OfferedOdd,
		ClassLevel:  0,
		Prerequisites: Expression{
			{ref("CSCI", 1100), ref("ENGR", 1200)},
			{ref("MATH", 1010)},
		},
		Corequisites:   Expression{{ref("CSCI", 1190)}},
		Complete:       true,
		ExtensionSlots: []Reference{},
	}
	if diff := cmp.Diff(expected, record); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestParseClassLevelFromRequisites(t *testing.T) {
	record, err := Parse([]string{
		"CSCI 4430 - Programming Languages",
		"Study of the design of programming languages.",
		"Prerequisites/Corequisites:",
		"Prerequisite: CSCI 2300 and senior or graduate standing.",
	})
	require.NoError(t, err)

	assert.Equal(t, ClassLevelSenior|ClassLevelGraduate, record.ClassLevel)
	assert.Equal(t, Expression{{ref("CSCI", 2300)}}, record.Prerequisites)
	assert.Equal(t, Offered(0), record.Offered)
}

func TestParseMinimal(t *testing.T) {
	record, err := Parse([]string{"CSCI 1000 - Intro"})
	require.NoError(t, err)

	expected := Record{
		Reference:      ref("CSCI", 1000),
		Title:          "Intro",
		Prerequisites:  Expression{},
		Corequisites:   Expression{},
		Complete:       true,
		ExtensionSlots: []Reference{},
	}
	if diff := cmp.Diff(expected, record); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}

func TestParseDescriptionOnly(t *testing.T) {
	record, err := Parse([]string{"MATH 1010 - Calculus I", ""})
	require.NoError(t, err)

	assert.Equal(t, "", record.Description)
	assert.Empty(t, record.Prerequisites)
	assert.True(t, record.Complete)
}

func TestParseRejects(t *testing.T) {
	testCases := []struct {
		name      string
		fragments []string
		expected  error
	}{
		{"empty", nil, ErrEmptyInput},
		{"no delimiter", []string{"BADLYFORMATTEDHEADER"}, ErrMalformedHeader},
		{"code too long", []string{"Special Topics in CSCI 4961 - Robotics"}, ErrMalformedHeader},
		{"non numeric code", []string{"CSCI ABCD - Intro"}, ErrMalformedHeader},
		{"lowercase subject", []string{"csci 1100 - Intro"}, ErrMalformedHeader},
		{"too short", []string{"CS 1 - Intro"}, ErrMalformedHeader},
		{"zero number", []string{"CSCI 0000 - Intro"}, ErrMalformedHeader},
		{"signed number", []string{"CSCI +110 - Intro"}, ErrMalformedHeader},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			record, err := Parse(test.fragments)
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.expected), "got %v", err)
			assert.Equal(t, Record{}, record)
		})
	}
}

func TestParseHeader(t *testing.T) {
	testCases := []struct {
		header    string
		reference Reference
		title     string
	}{
		{"CSCI 1100 - Computer Science I", ref("CSCI", 1100), "Computer Science I"},
		{"CSCI 1100 -Computer Science I", ref("CSCI", 1100), "Computer Science I"},
		{"ITWS 4500 - Web Science - Systems Development", ref("ITWS", 4500), "Web Science - Systems Development"},
		{"MATH1010 - Calculus I", ref("MATH", 1010), "Calculus I"},
		{"PHYS 1100", ref("PHYS", 1100), ""},
	}

	for _, test := range testCases {
		reference, title, err := ParseHeader(test.header)
		require.NoError(t, err, test.header)
		assert.Equal(t, test.reference, reference, test.header)
		assert.Equal(t, test.title, title, test.header)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	first, err := Parse(dataStructuresFragments)
	require.NoError(t, err)
	second, err := Parse(dataStructuresFragments)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("records differ (-first +second):\n%s", diff)
	}
}

func TestParseReferenceInvariants(t *testing.T) {
	headers := []string{
		"CSCI 1100 - Computer Science I",
		"ECSE 2010 - Electric Circuits",
		"MATH 4961 - Topics",
		"ARCH 0001 - Studio",
	}

	for _, header := range headers {
		record, err := Parse([]string{header, "description"})
		require.NoError(t, err, header)
		assert.Len(t, record.Reference.Subject, 4)
		assert.Positive(t, record.Reference.Number)
	}
}

func TestParseRequisitesAcrossFragments(t *testing.T) {
	// Linked course codes are separate text nodes on the page
	record, err := Parse([]string{
		"ECSE 2050 - Introduction to Electronics",
		"",
		"Prerequisites/Corequisites:",
		"Prerequisite:",
		"ECSE 2010",
		"and",
		"PHYS 1200",
		"or",
		"PHYS 1250",
		".",
	})
	require.NoError(t, err)

	expected := Expression{
		{ref("ECSE", 2010)},
		{ref("PHYS", 1200), ref("PHYS", 1250)},
	}
	if diff := cmp.Diff(expected, record.Prerequisites); diff != "" {
		t.Fatalf("unexpected prerequisites (-want +got):\n%s", diff)
	}
}

func TestParseRequisitesAcrossFragmentsAddsNoConjunction(t *testing.T) {
	record, err := Parse([]string{
		"CSCI 2200 - Foundations of Computer Science",
		"",
		"Prerequisites/Corequisites:",
		"Prerequisite: CSCI 1100 or",
		"MATH 1010",
	})
	require.NoError(t, err)

	expected := Expression{{ref("CSCI", 1100), ref("MATH", 1010)}}
	if diff := cmp.Diff(expected, record.Prerequisites); diff != "" {
		t.Fatalf("unexpected prerequisites (-want +got):\n%s", diff)
	}
}
