package db

import (
	"context"
	"strings"

	"github.com/brequin/catalog/courses"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const listCourses = `SELECT subject_area_code, catalog_number, title, description, offered, class_level, complete FROM courses ORDER BY subject_area_code, catalog_number`
const upsertCourse = `INSERT INTO courses (subject_area_code, catalog_number, title, description, offered, class_level, complete) VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (subject_area_code, catalog_number) DO UPDATE SET title=EXCLUDED.title, description=EXCLUDED.description, offered=EXCLUDED.offered, class_level=EXCLUDED.class_level, complete=EXCLUDED.complete`

const listRequisites = `SELECT subject_area_code, catalog_number, kind, group_index, member_index, requisite_subject_area_code, requisite_catalog_number FROM requisites ORDER BY subject_area_code, catalog_number, kind, group_index, member_index`
const deleteRequisites = `DELETE FROM requisites WHERE subject_area_code = $1 AND catalog_number = $2`
const insertRequisite = `INSERT INTO requisites (subject_area_code, catalog_number, kind, group_index, member_index, requisite_subject_area_code, requisite_catalog_number) VALUES ($1, $2, $3, $4, $5, $6, $7)`

func insertCallback(ct pgconn.CommandTag) error {
	return nil
}

func (d *Database) ListCourses(ctx context.Context) ([]courses.Record, error) {
	rows, err := d.Pool.Query(ctx, listCourses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coursesRows []Course
	for rows.Next() {
		var course Course
		if err := rows.Scan(&course.SubjectAreaCode, &course.CatalogNumber, &course.Title, &course.Description, &course.Offered, &course.ClassLevel, &course.Complete); err != nil {
			return nil, err
		}
		coursesRows = append(coursesRows, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	requisites, err := d.listRequisites(ctx)
	if err != nil {
		return nil, err
	}

	return Records(coursesRows, requisites)
}

func (d *Database) listRequisites(ctx context.Context) ([]Requisite, error) {
	rows, err := d.Pool.Query(ctx, listRequisites)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requisites []Requisite
	for rows.Next() {
		var requisite Requisite
		if err := rows.Scan(
			&requisite.SubjectAreaCode,
			&requisite.CatalogNumber,
			&requisite.Kind,
			&requisite.GroupIndex,
			&requisite.MemberIndex,
			&requisite.RequisiteSubjectAreaCode,
			&requisite.RequisiteCatalogNumber,
		); err != nil {
			return nil, err
		}
		requisites = append(requisites, requisite)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requisites, nil
}

// InsertCourses upserts records and replaces their requisites in one
// transaction.
func (d *Database) InsertCourses(ctx context.Context, records []courses.Record) error {
	if len(records) == 0 {
		return nil
	}

	// Later duplicates win, as in the catalog
	coursesRows, requisites := Rows(courses.NewCatalog(records).Records())

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, course := range coursesRows {
		queuedQueries = append(
			queuedQueries,
			batch.Queue(
				upsertCourse,
				course.SubjectAreaCode,
				course.CatalogNumber,
				course.Title,
				strings.ReplaceAll(course.Description, "\x00", ""),
				course.Offered,
				course.ClassLevel,
				course.Complete,
			),
			batch.Queue(deleteRequisites, course.SubjectAreaCode, course.CatalogNumber),
		)
	}

	for _, requisite := range requisites {
		queuedQueries = append(
			queuedQueries,
			batch.Queue(
				insertRequisite,
				requisite.SubjectAreaCode,
				requisite.CatalogNumber,
				string(requisite.Kind),
				requisite.GroupIndex,
				requisite.MemberIndex,
				requisite.RequisiteSubjectAreaCode,
				requisite.RequisiteCatalogNumber,
			),
		)
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	return pgx.BeginFunc(ctx, d.Pool, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, &batch).Close()
	})
}
