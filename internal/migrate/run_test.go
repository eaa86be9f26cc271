package migrate

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func TestSourceURL(t *testing.T) {
	assert.Equal(t, "file://migrations", SourceURL("migrations"))
}

func TestMigrationFilesArePaired(t *testing.T) {
	dir := filepath.Join("..", "..", "migrations")
	drv, err := source.Open(SourceURL(dir))
	require.NoError(t, err)
	defer drv.Close()

	first, err := drv.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var ups, downs []string
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups = append(ups, strings.TrimSuffix(name, ".up.sql"))
		case strings.HasSuffix(name, ".down.sql"):
			downs = append(downs, strings.TrimSuffix(name, ".down.sql"))
		}
	}
	sort.Strings(ups)
	sort.Strings(downs)
	assert.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}
