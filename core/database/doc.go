// Package database reads datasets stored in SQL tables.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration and exposes two helpers built on it:
//
//   - TableSource implements classifier.Source over a table whose columns are
//     the dataset header (Pattern, Parent and one column per property). Rows
//     are read in OrderColumn order so that declaration order is stable.
//   - GetTableColumns inspects a table's columns; the integrity feature uses
//     it to verify the required columns before a load is attempted.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	src := database.TableSource{DB: db, Table: "browscap", OrderColumn: "id"}
//	eng, err := classifier.Initialize(ctx, src, classifier.Options{})
package database
