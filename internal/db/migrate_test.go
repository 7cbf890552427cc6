package db

import (
	"context"
	"testing"

	gormModels "helping-hands/volunteerhub/internal/models/gorm"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	database, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer database.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	for _, model := range gormModels.All() {
		if !database.ORM.Migrator().HasTable(model) {
			t.Errorf("missing table for %T", model)
		}
	}

	// sqlx and gorm share the same connection
	var n int
	if err := database.SQL.GetContext(ctx, &n, "SELECT COUNT(*) FROM postings"); err != nil {
		t.Fatalf("sqlx query: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty postings, got %d", n)
	}
}
