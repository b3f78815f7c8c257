package datastore

import (
	"context"

	"game-datastore/core/database"

	"go.uber.org/zap"
)

// TableReport is the result of comparing one entity with its live table.
type TableReport struct {
	Name           string   `json:"name"`
	Table          string   `json:"table"`
	Status         string   `json:"status"` // ok, mismatch, missing
	MissingColumns []string `json:"missing_columns,omitempty"`
	ExtraColumns   []string `json:"extra_columns,omitempty"`
}

// SchemaReport aggregates the table reports of every registered entity.
type SchemaReport struct {
	Matched bool          `json:"matched"`
	Tables  []TableReport `json:"tables"`
	Errors  []string      `json:"errors,omitempty"`
}

// VerifySchema compares each registered entity's declared columns with the live database.
// Inspection failures are collected in the report rather than aborting the run.
func (s *Store) VerifySchema(ctx context.Context) SchemaReport {
	report := SchemaReport{Matched: true}
	db := s.db.WithContext(ctx)

	for _, e := range s.ordered {
		declared := e.describe()
		tr := TableReport{Name: declared.Name, Table: declared.Table, Status: "ok"}

		live, err := database.GetTableColumns(db, declared.Table)
		if err != nil {
			s.logger.Error("Schema inspection failed", zap.String("table", declared.Table), zap.Error(err))
			report.Errors = append(report.Errors, err.Error())
			report.Matched = false
			continue
		}

		if len(live) == 0 {
			tr.Status = "missing"
			report.Matched = false
			report.Tables = append(report.Tables, tr)
			continue
		}

		liveSet := make(map[string]struct{}, len(live))
		for _, c := range live {
			liveSet[c.Field] = struct{}{}
		}
		declaredSet := make(map[string]struct{}, len(declared.Columns))
		for _, c := range declared.Columns {
			declaredSet[c.Name] = struct{}{}
			if _, ok := liveSet[c.Name]; !ok {
				tr.MissingColumns = append(tr.MissingColumns, c.Name)
			}
		}
		for _, c := range live {
			if _, ok := declaredSet[c.Field]; !ok {
				tr.ExtraColumns = append(tr.ExtraColumns, c.Field)
			}
		}

		// Extra columns are tolerated; the ORM ignores them.
		if len(tr.MissingColumns) > 0 {
			tr.Status = "mismatch"
			report.Matched = false
		}
		report.Tables = append(report.Tables, tr)
	}

	return report
}
