package envstruct_test

import (
	"testing"

	"github.com/marleybr/Treningsapp-sub000/internal/envstruct"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}

func TestPopulate(t *testing.T) {
	type config struct {
		Addr      string `env:"TEST_ADDR" envDefault:"localhost:8080"`
		SqliteURL string `env:"TEST_SQLITE_URL"`
		Debug     bool   `env:"TEST_DEBUG" envDefault:"false"`
		MaxConns  int    `env:"TEST_MAX_CONNS" envDefault:"10"`
	}

	tests := []struct {
		name    string
		env     map[string]string
		want    config
		wantErr bool
	}{
		{
			name: "all values set",
			env: map[string]string{
				"TEST_ADDR":       "localhost:9999",
				"TEST_SQLITE_URL": ":memory:",
				"TEST_DEBUG":      "true",
				"TEST_MAX_CONNS":  "3",
			},
			want: config{Addr: "localhost:9999", SqliteURL: ":memory:", Debug: true, MaxConns: 3},
		},
		{
			name: "defaults applied",
			env:  map[string]string{"TEST_SQLITE_URL": "./app.sqlite3"},
			want: config{Addr: "localhost:8080", SqliteURL: "./app.sqlite3", Debug: false, MaxConns: 10},
		},
		{
			name:    "missing required value",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name: "invalid int",
			env: map[string]string{
				"TEST_SQLITE_URL": ":memory:",
				"TEST_MAX_CONNS":  "not-a-number",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config
			err := envstruct.Populate(&cfg, lookupFrom(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Populate() unexpected error: %v", err)
			}
			if cfg != tt.want {
				t.Errorf("Populate() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestPopulateRejectsNonStruct(t *testing.T) {
	var s string
	if err := envstruct.Populate(&s, lookupFrom(nil)); err == nil {
		t.Error("expected error for non-struct pointer")
	}
	if err := envstruct.Populate(struct{}{}, lookupFrom(nil)); err == nil {
		t.Error("expected error for non-pointer")
	}
}
