// Package dataset loads and cleans the census table the analyzer reports on.
//
// record.go defines Record, the fixed 15-column row schema, and Number, a
// float64 cell that decodes any non-numeric text to NaN ("missing") instead
// of failing the row. Aggregates over Numbers skip missing values.
//
// load.go reads a headerless delimited file through an afero.Fs, decoding
// rows with gocsv. Files ending in .gz or .zst are decompressed on the fly.
// Short rows are padded with missing cells and later dropped for their empty
// race. A row wider than the schema fails the whole load with
// ErrSchemaMismatch; an absent file fails with ErrMissingFile.
//
// dataset.go holds the cleaned, immutable Dataset and the predicate helpers
// used to filter and partition it. Cleaning drops rows whose race is empty
// or equal to the literal "race", which is what a header line fed through a
// headerless reader turns into.
package dataset
