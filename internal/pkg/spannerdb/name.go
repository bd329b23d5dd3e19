// Package spannerdb bootstraps Spanner instances, databases and schema.
package spannerdb

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDatabaseName is returned for names not of the form
// projects/P/instances/I/databases/D.
var ErrInvalidDatabaseName = errors.New("invalid Spanner database name")

// DatabaseName is a parsed fully-qualified Spanner database name.
type DatabaseName struct {
	Project  string
	Instance string
	Database string
}

// ParseDatabaseName splits projects/P/instances/I/databases/D.
func ParseDatabaseName(name string) (DatabaseName, error) {
	parts := strings.Split(name, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return DatabaseName{}, fmt.Errorf("%w: %q", ErrInvalidDatabaseName, name)
	}
	for _, p := range []string{parts[1], parts[3], parts[5]} {
		if p == "" {
			return DatabaseName{}, fmt.Errorf("%w: %q", ErrInvalidDatabaseName, name)
		}
	}
	return DatabaseName{Project: parts[1], Instance: parts[3], Database: parts[5]}, nil
}

func (n DatabaseName) ProjectPath() string {
	return "projects/" + n.Project
}

func (n DatabaseName) InstancePath() string {
	return n.ProjectPath() + "/instances/" + n.Instance
}

// String returns the fully-qualified database name.
func (n DatabaseName) String() string {
	return n.InstancePath() + "/databases/" + n.Database
}
