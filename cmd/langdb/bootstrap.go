package main

import (
	"fmt"

	"langdb/internal/engine"
	"langdb/internal/logging"
	"langdb/internal/sql"
)

type tableDef struct {
	name   string
	schema sql.Schema
}

func intCol(name string) sql.Column  { return sql.Column{Name: name, Type: sql.TypeInteger} }
func textCol(name string) sql.Column { return sql.Column{Name: name, Type: sql.TypeText} }

var bootstrapDefs = []tableDef{
	{"users", sql.NewSchema(intCol("id"), textCol("name"))},
	{"products", sql.NewSchema(intCol("id"), textCol("name"))},
	{"orders", sql.NewSchema(intCol("id"), intCol("user_id"), intCol("product_id"))},
}

// bootstrapTables creates the startup tables that do not exist yet.
func bootstrapTables(eng *engine.DBEngine) error {
	existing, err := eng.ListTables()
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for _, def := range bootstrapDefs {
		if have[def.name] {
			continue
		}
		if err := eng.CreateTable(def.name, def.schema); err != nil {
			return fmt.Errorf("create %s: %w", def.name, err)
		}
	}
	return nil
}

// loadDemoData fills the bootstrap tables with a few sample rows.
func loadDemoData(eng *engine.DBEngine) error {
	demo := map[string][]sql.Row{
		"users": {
			{sql.IntValue(1), sql.TextValue("Alice")},
			{sql.IntValue(2), sql.TextValue("Bob")},
			{sql.IntValue(3), sql.TextValue("Charlie")},
		},
		"products": {
			{sql.IntValue(1), sql.TextValue("Laptop")},
			{sql.IntValue(2), sql.TextValue("Mouse")},
		},
		"orders": {
			{sql.IntValue(1), sql.IntValue(1), sql.IntValue(1)},
			{sql.IntValue(2), sql.IntValue(2), sql.IntValue(2)},
			{sql.IntValue(3), sql.IntValue(1), sql.IntValue(2)},
		},
	}

	for _, def := range bootstrapDefs {
		rows := demo[def.name]
		if err := eng.InsertRows(def.name, rows); err != nil {
			return fmt.Errorf("insert into %s: %w", def.name, err)
		}
		logging.WithTable(def.name).Info("demo rows loaded", "count", len(rows))
	}
	return nil
}
