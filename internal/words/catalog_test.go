package words

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseCommaSeparated(t *testing.T) {
	input := "level1,level2,level3\ncat,ocean,paradox\ndog,canyon,entropy\n"

	catalog, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := catalog.Tier(1); !reflect.DeepEqual(got, []string{"cat", "dog"}) {
		t.Errorf("tier1 = %v", got)
	}
	if got := catalog.Tier(2); !reflect.DeepEqual(got, []string{"ocean", "canyon"}) {
		t.Errorf("tier2 = %v", got)
	}
	if got := catalog.Tier(3); !reflect.DeepEqual(got, []string{"paradox", "entropy"}) {
		t.Errorf("tier3 = %v", got)
	}
}

func TestParseTabSeparated(t *testing.T) {
	input := "level1\tlevel2\tlevel3\ncat\tocean\tparadox\n"

	catalog, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := catalog.Tier(1); !reflect.DeepEqual(got, []string{"cat"}) {
		t.Errorf("tier1 = %v", got)
	}
}

func TestParseSkipsBlankCells(t *testing.T) {
	input := "level1,level2,level3\ncat,,paradox\n,ocean,\ndog,,\n"

	catalog, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	tests := []struct {
		tier     int
		expected []string
	}{
		{1, []string{"cat", "dog"}},
		{2, []string{"ocean"}},
		{3, []string{"paradox"}},
	}

	for _, tt := range tests {
		if got := catalog.Tier(tt.tier); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("tier%d = %v, want %v", tt.tier, got, tt.expected)
		}
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	input := "level1,level2,level3\n cat , ocean , paradox \n"

	catalog, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := catalog.Tier(1); !reflect.DeepEqual(got, []string{"cat"}) {
		t.Errorf("tier1 = %v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	catalog, err := Load(filepath.Join(t.TempDir(), "does_not_exist.csv"))
	if err != nil {
		t.Fatalf("Load() should not fail for a missing file: %v", err)
	}

	if catalog.Size() != 0 {
		t.Errorf("expected empty catalog, got %d words", catalog.Size())
	}
}

func TestTierReturnsCopy(t *testing.T) {
	catalog, err := Parse(strings.NewReader("level1,level2,level3\ncat,ocean,paradox\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	tier := catalog.Tier(1)
	tier[0] = "mutated"

	if got := catalog.Tier(1)[0]; got != "cat" {
		t.Errorf("catalog was mutated through Tier(): %v", got)
	}
}

func TestTierUnknownLevel(t *testing.T) {
	catalog := &Catalog{}
	if got := catalog.Tier(4); len(got) != 0 {
		t.Errorf("unknown tier should be empty, got %v", got)
	}
}
