//go:build integration

package mysql

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
)

// startMySQL runs a MySQL container seeded with db/schema.sql and returns a
// DSN for it. The container is removed when the test ends.
func startMySQL(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	schema := filepath.Join(filepath.Dir(file), "..", "..", "..", "db", "schema.sql")

	container, err := tcmysql.RunContainer(ctx,
		testcontainers.WithImage("mysql:8.0.36"),
		tcmysql.WithDatabase("pantry_test"),
		tcmysql.WithUsername("pantry"),
		tcmysql.WithPassword("pantry"),
		tcmysql.WithScripts(schema),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port("3306/tcp"))
	require.NoError(t, err)

	return "pantry:pantry@tcp(" + host + ":" + port.Port() + ")/pantry_test?parseTime=true"
}
