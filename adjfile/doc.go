// Package adjfile reads adjacency matrices from delimited text files.
//
// Format
//
//   - One matrix row per line; the row count must equal the column count.
//   - Every maximal run of ASCII digits on a line is one value; everything else
//     (spaces, commas, tabs, stray text) is ignored.
//   - Lines without any digit (blank lines, headers) are skipped.
//
// Parse reports a row-length mismatch before any graph is built, wrapping
// graph.ErrInvalidGraph and naming the 1-based line. Load parses and then calls
// graph.New, so asymmetric data fails there with the same sentinel.
package adjfile
