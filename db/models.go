package db

import (
	"github.com/brequin/catalog/courses"
)

type RequisiteKind string

const (
	RequisiteKindPrereq RequisiteKind = "prereq"
	RequisiteKindCoreq  RequisiteKind = "coreq"
)

type Course struct {
	SubjectAreaCode string
	CatalogNumber   int
	Title           string
	Description     string
	Offered         string
	ClassLevel      string
	Complete        bool
}

// One member of one requisite group of a course
type Requisite struct {
	SubjectAreaCode          string
	CatalogNumber            int
	Kind                     RequisiteKind
	GroupIndex               int
	MemberIndex              int
	RequisiteSubjectAreaCode string
	RequisiteCatalogNumber   int
}

func requisiteRows(reference courses.Reference, kind RequisiteKind, expression courses.Expression) []Requisite {
	var requisites []Requisite
	for groupIndex, group := range expression {
		for memberIndex, member := range group {
			requisites = append(requisites, Requisite{
				SubjectAreaCode:          reference.Subject,
				CatalogNumber:            reference.Number,
				Kind:                     kind,
				GroupIndex:               groupIndex,
				MemberIndex:              memberIndex,
				RequisiteSubjectAreaCode: member.Subject,
				RequisiteCatalogNumber:   member.Number,
			})
		}
	}
	return requisites
}

// Rows flattens records into course and requisite rows.
func Rows(records []courses.Record) ([]Course, []Requisite) {
	var coursesRows []Course
	var requisites []Requisite

	for _, record := range records {
		coursesRows = append(coursesRows, Course{
			SubjectAreaCode: record.Reference.Subject,
			CatalogNumber:   record.Reference.Number,
			Title:           record.Title,
			Description:     record.Description,
			Offered:         record.Offered.String(),
			ClassLevel:      record.ClassLevel.String(),
			Complete:        record.Complete,
		})
		requisites = append(requisites, requisiteRows(record.Reference, RequisiteKindPrereq, record.Prerequisites)...)
		requisites = append(requisites, requisiteRows(record.Reference, RequisiteKindCoreq, record.Corequisites)...)
	}

	return coursesRows, requisites
}

func appendMember(expression courses.Expression, requisite Requisite) courses.Expression {
	for len(expression) <= requisite.GroupIndex {
		expression = append(expression, courses.Group{})
	}
	member := courses.Reference{Subject: requisite.RequisiteSubjectAreaCode, Number: requisite.RequisiteCatalogNumber}
	expression[requisite.GroupIndex] = append(expression[requisite.GroupIndex], member)
	return expression
}

// Records rebuilds records from rows. Requisites must be ordered by group
// and member index.
func Records(coursesRows []Course, requisites []Requisite) ([]courses.Record, error) {
	records := make([]courses.Record, 0, len(coursesRows))
	index := make(map[courses.Reference]int, len(coursesRows))

	for _, course := range coursesRows {
		record := courses.Record{
			Reference:      courses.Reference{Subject: course.SubjectAreaCode, Number: course.CatalogNumber},
			Title:          course.Title,
			Description:    course.Description,
			Prerequisites:  courses.Expression{},
			Corequisites:   courses.Expression{},
			Complete:       course.Complete,
			ExtensionSlots: []courses.Reference{},
		}
		if err := record.Offered.UnmarshalText([]byte(course.Offered)); err != nil {
			return nil, err
		}
		if err := record.ClassLevel.UnmarshalText([]byte(course.ClassLevel)); err != nil {
			return nil, err
		}
		index[record.Reference] = len(records)
		records = append(records, record)
	}

	for _, requisite := range requisites {
		i, ok := index[courses.Reference{Subject: requisite.SubjectAreaCode, Number: requisite.CatalogNumber}]
		if !ok {
			continue
		}
		switch requisite.Kind {
		case RequisiteKindPrereq:
			records[i].Prerequisites = appendMember(records[i].Prerequisites, requisite)
		case RequisiteKindCoreq:
			records[i].Corequisites = appendMember(records[i].Corequisites, requisite)
		}
	}

	return records, nil
}
