package database

import (
	"strings"
	"testing"
)

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "no placeholders",
			query:    "SELECT * FROM game_results",
			expected: "SELECT * FROM game_results",
		},
		{
			name:     "single placeholder",
			query:    "SELECT id FROM game_results WHERE ai_word = ?",
			expected: "SELECT id FROM game_results WHERE ai_word = $1",
		},
		{
			name:     "multiple placeholders",
			query:    "INSERT INTO game_results (ai_word, human_word, score) VALUES (?, ?, ?)",
			expected: "INSERT INTO game_results (ai_word, human_word, score) VALUES ($1, $2, $3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := rewritePlaceholdersToNumbered(tt.query)
			if result != tt.expected {
				t.Errorf("rewritePlaceholdersToNumbered() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDialectRewriteQuery(t *testing.T) {
	query := "SELECT round_count FROM game_status WHERE user_id = ?"

	tests := []struct {
		name     string
		dialect  Dialect
		expected string
	}{
		{
			name:     "sqlite keeps question marks",
			dialect:  NewSQLiteDialect(),
			expected: query,
		},
		{
			name:     "mysql keeps question marks",
			dialect:  NewMySQLDialect(),
			expected: query,
		},
		{
			name:     "postgres rewrites to numbered",
			dialect:  NewPostgresDialect(),
			expected: "SELECT round_count FROM game_status WHERE user_id = $1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDialectSupportsLastInsertId(t *testing.T) {
	if !NewSQLiteDialect().SupportsLastInsertId() {
		t.Error("sqlite should support LastInsertId")
	}
	if !NewMySQLDialect().SupportsLastInsertId() {
		t.Error("mysql should support LastInsertId")
	}
	if NewPostgresDialect().SupportsLastInsertId() {
		t.Error("postgres should not support LastInsertId")
	}
}

func TestDialectUpsertGameStatus(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		contains string
	}{
		{
			name:     "sqlite uses ON CONFLICT",
			dialect:  NewSQLiteDialect(),
			contains: "ON CONFLICT(user_id)",
		},
		{
			name:     "mysql uses ON DUPLICATE KEY",
			dialect:  NewMySQLDialect(),
			contains: "ON DUPLICATE KEY UPDATE",
		},
		{
			name:     "postgres uses ON CONFLICT",
			dialect:  NewPostgresDialect(),
			contains: "ON CONFLICT (user_id)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := tt.dialect.UpsertGameStatus()
			if !strings.Contains(query, tt.contains) {
				t.Errorf("UpsertGameStatus() = %v, missing %v", query, tt.contains)
			}
			if !strings.Contains(query, "round_count") {
				t.Errorf("UpsertGameStatus() should touch round_count, got %v", query)
			}
		})
	}
}

func TestDialectMigrationsSubdir(t *testing.T) {
	if got := NewSQLiteDialect().MigrationsSubdir(); got != "sqlite" {
		t.Errorf("sqlite subdir = %v", got)
	}
	if got := NewMySQLDialect().MigrationsSubdir(); got != "mysql" {
		t.Errorf("mysql subdir = %v", got)
	}
	if got := NewPostgresDialect().MigrationsSubdir(); got != "postgres" {
		t.Errorf("postgres subdir = %v", got)
	}
}
