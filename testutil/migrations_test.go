package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-agency/backend/migrations"
	"github.com/pkordes/travel-agency/backend/testutil"
)

// migrationFiles is the number of *.sql files in migrations/.
const migrationFiles = 8

// allTables lists every table created by the migrations.
var allTables = []string{
	"users", "trips", "blogs", "reviews", "written_reviews", "certificates",
	"destinations", "drivers", "faqs", "banners", "branding_partners",
	"hotel_partners", "team_members", "enquiries", "otps",
	"product_page_settings", "media_orphans",
}

// uniqueConstraints back the conflict errors the repositories translate.
var uniqueConstraints = map[string]string{
	"users_email_key":                    "users",
	"trips_slug_key":                     "trips",
	"blogs_slug_key":                     "blogs",
	"product_page_settings_page_key_key": "product_page_settings",
}

// TestMigrations applies every migration, checks the schema, and rolls all of
// them back again. Skipped when TEST_DATABASE_URL is not set.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	require.NoError(t, err, "create goose provider")

	ctx := context.Background()

	// Other packages' TestMain may already have migrated this database.
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.Len(t, results, migrationFiles, "one result per migration file")

	for _, table := range allTables {
		assert.True(t, tableExists(t, db, table), "expected table %q after up", table)
	}
	for name, table := range uniqueConstraints {
		assert.True(t, constraintExists(t, db, table, name), "expected constraint %s on %s", name, table)
	}

	t.Run("second up is a no-op", func(t *testing.T) {
		again, err := provider.Up(ctx)
		require.NoError(t, err)
		assert.Empty(t, again)
	})

	t.Run("down removes only the latest migration", func(t *testing.T) {
		_, err := provider.Down(ctx)
		require.NoError(t, err)
		assert.False(t, tableExists(t, db, "media_orphans"))
		assert.True(t, tableExists(t, db, "product_page_settings"))

		_, err = provider.Up(ctx)
		require.NoError(t, err)
	})

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")
	for _, table := range allTables {
		assert.False(t, tableExists(t, db, table), "expected table %q to be dropped", table)
	}

	// Leave the schema in place for packages that run after this one.
	_, err = provider.Up(ctx)
	require.NoError(t, err, "restore schema")
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)`
	var exists bool
	require.NoError(t, db.QueryRowContext(context.Background(), q, table).Scan(&exists), "check table %q", table)
	return exists
}

func constraintExists(t *testing.T, db *sql.DB, table, name string) bool {
	t.Helper()
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.table_constraints
			WHERE table_schema = 'public' AND table_name = $1
			  AND constraint_name = $2 AND constraint_type = 'UNIQUE'
		)`
	var exists bool
	require.NoError(t, db.QueryRowContext(context.Background(), q, table, name).Scan(&exists), "check constraint %q", name)
	return exists
}
