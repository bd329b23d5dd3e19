package spannerdb

import (
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
)

// Migration is one DDL file split into statements.
type Migration struct {
	Name       string
	Statements []string
}

// LoadMigrations reads every *.sql file of fsys in name order.
func LoadMigrations(fsys fs.FS) ([]Migration, error) {
	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migration files: %w", err)
	}
	sort.Strings(files)

	migrations := make([]Migration, 0, len(files))
	for _, file := range files {
		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		migrations = append(migrations, Migration{
			Name:       file,
			Statements: SplitDDL(string(content)),
		})
	}
	return migrations, nil
}

// SplitDDL drops "--" comment lines and splits the rest on semicolons.
func SplitDDL(content string) []string {
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	statements := make([]string, 0)
	for _, stmt := range strings.Split(b.String(), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}

var createRe = regexp.MustCompile(`(?i)^CREATE\s+(?:UNIQUE\s+)?(?:NULL_FILTERED\s+)?(TABLE|INDEX)\s+` + "`?" + `(\w+)`)

// objectKey returns "TABLE name" or "INDEX name" for CREATE statements, "" otherwise.
func objectKey(stmt string) string {
	m := createRe.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1]) + " " + strings.ToLower(m[2])
}

// PendingStatements filters out CREATE TABLE / CREATE INDEX statements whose
// object already exists in the database DDL. Other statements are kept.
func PendingStatements(statements, existingDDL []string) []string {
	existing := make(map[string]bool, len(existingDDL))
	for _, stmt := range existingDDL {
		if key := objectKey(stmt); key != "" {
			existing[key] = true
		}
	}

	pending := make([]string, 0, len(statements))
	for _, stmt := range statements {
		if key := objectKey(stmt); key != "" && existing[key] {
			continue
		}
		pending = append(pending, stmt)
	}
	return pending
}
