package storage

import "testing"

func TestDialectFor(t *testing.T) {
	tests := []struct {
		dsn    string
		driver string
	}{
		{"~/.arcade/scores.db", "sqlite"},
		{"/tmp/scores.db", "sqlite"},
		{"postgres://arcade@localhost/arcade?sslmode=disable", "postgres"},
		{"PostgreSQL://arcade@db/arcade", "postgres"},
		{"postgres.db", "sqlite"},
	}
	for _, tt := range tests {
		if got := dialectFor(tt.dsn).driver; got != tt.driver {
			t.Errorf("dialectFor(%q) = %q, want %q", tt.dsn, got, tt.driver)
		}
	}
}

func TestRebind(t *testing.T) {
	q := "SELECT id FROM scores WHERE game_id = ? AND score > ? LIMIT ?"

	if got := sqliteDialect.rebind(q); got != q {
		t.Errorf("sqlite rebind changed the query: %q", got)
	}

	want := "SELECT id FROM scores WHERE game_id = $1 AND score > $2 LIMIT $3"
	if got := postgresDialect.rebind(q); got != want {
		t.Errorf("postgres rebind = %q, want %q", got, want)
	}
}
