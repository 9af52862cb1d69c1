package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/brequin/catalog/courses"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var showCatalog string

func init() {
	showCmd.Flags().StringVar(&showCatalog, "catalog", "", "Catalog file to read (default from config).")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <SUBJ NNNN>",
	Short: "Shows a course, its requisites and the courses it leads to.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogFile := showCatalog
		if catalogFile == "" {
			catalogFile = cfg.Output
		}

		reference, err := courses.ParseReference(strings.Join(args, " "))
		if err != nil {
			return err
		}

		records, err := courses.ReadFile(catalogFile)
		if err != nil {
			return err
		}
		catalog := courses.NewCatalog(records)

		record, ok := catalog.Get(reference)
		if !ok {
			return fmt.Errorf("%v is not in %v", reference, catalogFile)
		}

		renderCourse(cmd.OutOrStdout(), catalog, record)
		return nil
	},
}

func formatExpression(expression courses.Expression) string {
	if len(expression) == 0 {
		return "none"
	}

	groups := make([]string, 0, len(expression))
	for _, group := range expression {
		members := make([]string, 0, len(group))
		for _, member := range group {
			members = append(members, member.String())
		}
		if len(members) > 1 {
			groups = append(groups, "("+strings.Join(members, " or ")+")")
		} else {
			groups = append(groups, strings.Join(members, ""))
		}
	}
	return strings.Join(groups, " and ")
}

func formatReferences(references []courses.Reference) string {
	if len(references) == 0 {
		return "none"
	}
	formatted := make([]string, 0, len(references))
	for _, reference := range references {
		formatted = append(formatted, reference.String())
	}
	return strings.Join(formatted, ", ")
}

func renderCourse(w io.Writer, catalog *courses.Catalog, record courses.Record) {
	fmt.Fprintf(w, "%v: %v\n", record.Reference, record.Title)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendRows([]table.Row{
		{"Offered", record.Offered.String()},
		{"Class level", record.ClassLevel.String()},
		{"Prerequisites", formatExpression(record.Prerequisites)},
		{"Corequisites", formatExpression(record.Corequisites)},
		{"Leads to", formatReferences(catalog.PostOptions(record.Reference))},
		{"Complete", record.Complete},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 80},
	})
	t.Render()

	if record.Description != "" {
		fmt.Fprintln(w, record.Description)
	}
}
