package db

import (
	"testing"

	"github.com/brequin/catalog/courses"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, fragments ...string) courses.Record {
	t.Helper()
	record, err := courses.Parse(fragments)
	require.NoError(t, err)
	return record
}

func TestRows(t *testing.T) {
	record := parse(t,
		"CSCI 2500 - Computer Organization",
		"Assembly.",
		"Prerequisites/Corequisites:",
		"CSCI 1200 and MATH 2800 or MATH 2801. Corequisite: CSCI 2200 and junior standing",
		"When Offered:",
		"Spring",
	)

	coursesRows, requisites := Rows([]courses.Record{record})

	expectedCourses := []Course{{
		SubjectAreaCode: "CSCI",
		CatalogNumber:   2500,
		Title:           "Computer Organization",
		Description:     "Assembly.",
		Offered:         "s",
		ClassLevel:      "j",
		Complete:        true,
	}}
	if diff := cmp.Diff(expectedCourses, coursesRows); diff != "" {
		t.Fatalf("unexpected courses (-want +got):\n%s", diff)
	}

	expectedRequisites := []Requisite{
		{"CSCI", 2500, RequisiteKindPrereq, 0, 0, "CSCI", 1200},
		{"CSCI", 2500, RequisiteKindPrereq, 1, 0, "MATH", 2800},
		{"CSCI", 2500, RequisiteKindPrereq, 1, 1, "MATH", 2801},
		{"CSCI", 2500, RequisiteKindCoreq, 0, 0, "CSCI", 2200},
	}
	if diff := cmp.Diff(expectedRequisites, requisites); diff != "" {
		t.Fatalf("unexpected requisites (-want +got):\n%s", diff)
	}
}

func TestRecords(t *testing.T) {
	records := []courses.Record{
		parse(t,
			"CSCI 2300 - Introduction to Algorithms",
			"",
			"Prerequisites/Corequisites:",
			"CSCI 1200 and MATH 2800 or MATH 2801 orequisite CSCI 2200",
			"When Offered:",
			"Fall and Spring",
		),
		parse(t, "CSCI 1100 - Computer Science I"),
	}

	coursesRows, requisites := Rows(records)
	// Orphaned rows are ignored
	requisites = append(requisites, Requisite{"PHYS", 1100, RequisiteKindPrereq, 0, 0, "MATH", 1010})

	rebuilt, err := Records(coursesRows, requisites)
	require.NoError(t, err)
	if diff := cmp.Diff(records, rebuilt); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}
}

func TestRecordsRejectsUnknownFlags(t *testing.T) {
	_, err := Records([]Course{{SubjectAreaCode: "CSCI", CatalogNumber: 1100, Offered: "x"}}, nil)
	require.Error(t, err)
}
