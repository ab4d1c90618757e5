// Package dataset turns the dataset configuration into a classifier.Source.
//
// The source kind selects one of three backends:
//
//   - file: a delimited text file on local disk (classifier.FileSource)
//   - storage: an object in the configured MinIO/S3 bucket (storage.ObjectSource)
//   - database: a SQL table read through GORM (database.TableSource)
//
// Backends are created lazily through Connectors so that a file-backed
// deployment never dials storage or a database.
package dataset
