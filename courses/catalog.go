package courses

import (
	"cmp"
	"slices"
)

func CompareReferences(a, b Reference) int {
	if c := cmp.Compare(a.Subject, b.Subject); c != 0 {
		return c
	}
	return cmp.Compare(a.Number, b.Number)
}

// Catalog indexes records by reference. Referenced courses that were never
// parsed are allowed and have no record.
type Catalog struct {
	records     map[Reference]Record
	postOptions map[Reference][]Reference
}

// NewCatalog indexes records. A later record with the same reference
// replaces an earlier one.
func NewCatalog(records []Record) *Catalog {
	catalog := &Catalog{
		records:     make(map[Reference]Record, len(records)),
		postOptions: make(map[Reference][]Reference),
	}
	for _, record := range records {
		catalog.records[record.Reference] = record
	}

	for _, record := range catalog.Records() {
		seen := make(map[Reference]bool)
		for _, prerequisite := range record.Prerequisites.References() {
			if seen[prerequisite] {
				continue
			}
			seen[prerequisite] = true
			catalog.postOptions[prerequisite] = append(catalog.postOptions[prerequisite], record.Reference)
		}
	}

	return catalog
}

func (c *Catalog) Len() int {
	return len(c.records)
}

func (c *Catalog) Get(reference Reference) (Record, bool) {
	record, ok := c.records[reference]
	return record, ok
}

// Records returns every record ordered by reference.
func (c *Catalog) Records() []Record {
	records := make([]Record, 0, len(c.records))
	for _, record := range c.records {
		records = append(records, record)
	}
	slices.SortFunc(records, func(a, b Record) int {
		return CompareReferences(a.Reference, b.Reference)
	})
	return records
}

// PostOptions returns the courses that list reference among their
// prerequisites, ordered by reference.
func (c *Catalog) PostOptions(reference Reference) []Reference {
	return slices.Clone(c.postOptions[reference])
}
