// Package report persists hemisphere-check outcomes in SQLite so that QC
// runs across a study can be reviewed later. It includes:
//   - Open: pure-Go SQLite database handle
//   - Record model and Store for durable check results
//   - Schema helper creating the hemi_checks table
//   - Pole encoding (BLOB) and similarity ranking over stored poles
package report
