// Package utils provides small conversion helpers shared by the dataset
// sources and the classifier: turning scanned database values into dataset
// cells and interpreting the dataset's boolean spelling.
package utils
