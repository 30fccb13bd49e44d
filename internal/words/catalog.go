package words

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Catalog holds the static vocabulary partitioned into three difficulty
// tiers. It is loaded once at startup and immutable afterwards.
type Catalog struct {
	tier1 []string
	tier2 []string
	tier3 []string
}

// Load reads the word catalog from a CSV or TSV file with columns
// level1, level2, level3. Each non-empty cell contributes one word to its
// tier, order preserved. A missing file yields an empty catalog rather
// than an error: the game degrades to "no words available".
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("word catalog not found, starting with empty tiers")
			return &Catalog{}, nil
		}
		return nil, fmt.Errorf("failed to open word catalog: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a catalog from tabular data, sniffing the delimiter
// (tab or comma) from the header line.
func Parse(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read word catalog: %w", err)
	}

	header, _, _ := strings.Cut(string(data), "\n")
	delimiter := ','
	if strings.Contains(header, "\t") {
		delimiter = '\t'
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse word catalog: %w", err)
	}

	if len(records) == 0 {
		return &Catalog{}, nil
	}

	// Map header names to column positions
	columns := map[string]int{}
	for i, name := range records[0] {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	catalog := &Catalog{}
	for _, row := range records[1:] {
		catalog.tier1 = appendCell(catalog.tier1, row, columns, "level1")
		catalog.tier2 = appendCell(catalog.tier2, row, columns, "level2")
		catalog.tier3 = appendCell(catalog.tier3, row, columns, "level3")
	}

	return catalog, nil
}

// appendCell appends the trimmed cell for a named column, skipping blanks
func appendCell(words []string, row []string, columns map[string]int, name string) []string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return words
	}
	word := strings.TrimSpace(row[idx])
	if word == "" {
		return words
	}
	return append(words, word)
}

// Tier returns a copy of the word list for a tier (1, 2, or 3).
// Unknown tiers return an empty list.
func (c *Catalog) Tier(n int) []string {
	var src []string
	switch n {
	case 1:
		src = c.tier1
	case 2:
		src = c.tier2
	case 3:
		src = c.tier3
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Size returns the total number of words across all tiers
func (c *Catalog) Size() int {
	return len(c.tier1) + len(c.tier2) + len(c.tier3)
}
