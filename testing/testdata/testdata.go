package testdata

import (
	"path/filepath"
	"runtime"
)

// basepath is the root directory of this package.
var basepath string

func init() {
	_, currentFile, _, _ := runtime.Caller(0)
	basepath = filepath.Dir(currentFile)
}

// Path returns the absolute path the given relative file or directory path,
// relative to this testdata/ directory in the user's GOPATH.
// If rel is already absolute, it is returned unmodified.
// Taken from https://github.com/grpc/grpc-go/blob/master/testdata/testdata.go.
func Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}

	return filepath.Join(basepath, rel)
}

// Source_Device20110605 is a raw device log with the classic defects:
// an empty segment, a duplicate segment (same first timestamp), out-of-order
// trackpoints, a missing elevation, and a segment under the default
// minpoints threshold.
var Source_Device20110605 = "./device_2011-06-05.gpx"

// Source_Malformed is a truncated document that must fail the parse.
var Source_Malformed = "./malformed.gpx"
