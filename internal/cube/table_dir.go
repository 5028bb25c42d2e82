package cube

import "path/filepath"

// tableFileNames gives each stage's on-disk file name within a tables
// directory, in Stages order.
var tableFileNames = [4]string{"g1.dat", "g2.dat", "g3.dat", "g4.dat"}

// LoadOrBuildTables loads all four stage tables from dir (one file per
// stage, named g1.dat..g4.dat), building and persisting any that are
// missing or fail validation. Pass an empty dir to always build tables
// in memory without touching disk.
//
// A persistence failure for one stage does not discard the tables:
// LoadOrBuildTable always returns a usable in-memory table alongside
// such an error, so t is fully populated and safe to solve with even
// when err is non-nil.
func LoadOrBuildTables(dir string) (t Tables, err error) {
	for i, stage := range Stages {
		path := ""
		if dir != "" {
			path = filepath.Join(dir, tableFileNames[i])
		}
		table, loadErr := LoadOrBuildTable(stage, path)
		t[i] = table
		if loadErr != nil && err == nil {
			err = loadErr
		}
	}
	return t, err
}
