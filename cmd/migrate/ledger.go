package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
)

// Applied migration files are recorded by file name so reruns only apply new files.
const (
	ledgerTable = "schema_migrations"

	ledgerDDL = "CREATE TABLE IF NOT EXISTS " + ledgerTable + " (\n" +
		"  name STRING(256) NOT NULL,\n" +
		"  applied_at TIMESTAMP NOT NULL OPTIONS (allow_commit_timestamp=true),\n" +
		") PRIMARY KEY (name)"
)

// applyMigrations applies every migration file in dir that the ledger does
// not list yet, in file name order. It returns the number applied.
func (a *admin) applyMigrations(ctx context.Context, client *spanner.Client, dir string) (int, error) {
	if err := a.updateDDL(ctx, []string{ledgerDDL}); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", ledgerTable, err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to list migration files: %w", err)
	}
	applied, err := readApplied(ctx, client)
	if err != nil {
		return 0, err
	}

	pending := pendingMigrations(files, applied)
	for _, file := range pending {
		name := filepath.Base(file)
		content, err := os.ReadFile(file)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", file, err)
		}

		if statements := splitDDLStatements(string(content)); len(statements) > 0 {
			if err := a.updateDDL(ctx, statements); err != nil {
				return 0, fmt.Errorf("failed to apply %s: %w", name, err)
			}
		}
		if _, err := client.Apply(ctx, []*spanner.Mutation{recordApplied(name)}); err != nil {
			return 0, fmt.Errorf("failed to record %s: %w", name, err)
		}
		a.logger.Info("migration applied", zap.String("file", name))
	}

	if skipped := len(files) - len(pending); skipped > 0 {
		a.logger.Debug("migrations already applied", zap.Int("count", skipped))
	}
	return len(pending), nil
}

func readApplied(ctx context.Context, client *spanner.Client) (map[string]bool, error) {
	applied := make(map[string]bool)
	iter := client.Single().Read(ctx, ledgerTable, spanner.AllKeys(), []string{"name"})
	err := iter.Do(func(row *spanner.Row) error {
		var name string
		if err := row.Columns(&name); err != nil {
			return err
		}
		applied[name] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ledgerTable, err)
	}
	return applied, nil
}

func recordApplied(name string) *spanner.Mutation {
	return spanner.InsertOrUpdate(ledgerTable,
		[]string{"name", "applied_at"},
		[]any{name, spanner.CommitTimestamp},
	)
}

// pendingMigrations returns the files whose base name is not in applied,
// sorted by base name.
func pendingMigrations(files []string, applied map[string]bool) []string {
	var pending []string
	for _, file := range files {
		if !applied[filepath.Base(file)] {
			pending = append(pending, file)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return filepath.Base(pending[i]) < filepath.Base(pending[j])
	})
	return pending
}

// splitDDLStatements splits a migration file on semicolons. "--" comments are
// dropped and quoted text is kept intact, so a semicolon or "--" inside a
// string literal or backquoted identifier does not split or truncate.
func splitDDLStatements(content string) []string {
	var (
		statements []string
		current    strings.Builder
		quote      rune
		comment    bool
	)
	flush := func() {
		if stmt := tidyStatement(current.String()); stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	runes := []rune(content)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case comment:
			if r == '\n' {
				comment = false
				current.WriteRune(r)
			}
		case quote != 0:
			current.WriteRune(r)
			if r == '\\' && i+1 < len(runes) {
				i++
				current.WriteRune(runes[i])
			} else if r == quote {
				quote = 0
			}
		case r == '-' && i+1 < len(runes) && runes[i+1] == '-':
			comment = true
			i++
		case r == '\'' || r == '"' || r == '`':
			quote = r
			current.WriteRune(r)
		case r == ';':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return statements
}

// tidyStatement trims every line and drops blank ones.
func tidyStatement(stmt string) string {
	var lines []string
	for _, line := range strings.Split(stmt, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
