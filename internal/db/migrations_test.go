package db

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var percentageType = regexp.MustCompile(`(?i)percentage\s+(?:TYPE\s+)?(NUMERIC(?:\s*\([^)]*\))?)`)

// Applies the migrations in order and checks the type refunds.percentage
// ends up with.
func TestMigrations_RefundPercentageKeepsScale(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("migrations", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	sort.Strings(files)

	var last string
	for _, file := range files {
		raw, err := os.ReadFile(file)
		require.NoError(t, err)
		for _, match := range percentageType.FindAllStringSubmatch(string(raw), -1) {
			last = match[1]
		}
	}

	require.NotEmpty(t, last, "refunds.percentage not declared")
	assert.Equal(t, "NUMERIC", strings.ToUpper(strings.TrimSpace(last)))
}
