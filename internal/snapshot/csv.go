package snapshot

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/Veraticus/the-markets-must-flow/internal/model"
)

// subcategoryDelimiter joins a category's subcategories into one CSV field.
const subcategoryDelimiter = "; "

// ExportCSV emits one sport as three section-delimited blocks: the market
// list, the category configuration in normalized order, and the markets
// grouped per category numbered by their position in the underlying market
// sequence. The last block makes the array-position ordering reproducible
// outside the tool.
func (s *Serializer) ExportCSV(sportKey string) ([]byte, error) {
	if err := s.store.NormalizeCategoryOrder(sportKey); err != nil {
		return nil, err
	}
	sp, err := s.store.Snapshot(sportKey)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	buf.WriteString("=== MARKETS ===\n")
	writeRow(&buf, "Original Name", "Display Name", "External Type", "Suggested Category", "Suggested Subcategory", "Active")
	for i := range sp.Markets {
		m := &sp.Markets[i]
		writeRow(&buf, m.OriginalName, m.DisplayName, m.ExternalType,
			m.SuggestedCategory, m.SuggestedSubcategory, strconv.FormatBool(m.Active))
	}

	buf.WriteString("=== CATEGORIES ===\n")
	writeRow(&buf, "Position", "Name", "Subcategories")
	for i := range sp.SuggestedCategories {
		c := &sp.SuggestedCategories[i]
		writeRow(&buf, strconv.Itoa(i), c.Name, strings.Join(c.Subcategories, subcategoryDelimiter))
	}

	buf.WriteString("=== CATEGORY ORDER ===\n")
	writeRow(&buf, "Category", "Position", "Market ID", "Original Name")
	for _, group := range marketsByCategory(sp) {
		for pos, m := range group.markets {
			writeRow(&buf, group.category, strconv.Itoa(pos+1), m.ID, m.OriginalName)
		}
	}

	return buf.Bytes(), nil
}

type categoryGroup struct {
	category string
	markets  []model.Market
}

// marketsByCategory buckets markets by suggested category, keeping the
// underlying sequence order within each bucket. Configured categories come
// first in their normalized order; category values with no config follow,
// sorted by name.
func marketsByCategory(sp *model.Sport) []categoryGroup {
	buckets := make(map[string][]model.Market)
	for i := range sp.Markets {
		cat := sp.Markets[i].SuggestedCategory
		buckets[cat] = append(buckets[cat], sp.Markets[i])
	}

	groups := make([]categoryGroup, 0, len(buckets))
	for i := range sp.SuggestedCategories {
		name := sp.SuggestedCategories[i].Name
		if markets, ok := buckets[name]; ok {
			groups = append(groups, categoryGroup{category: name, markets: markets})
			delete(buckets, name)
		}
	}

	rest := make([]string, 0, len(buckets))
	for name := range buckets {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	for _, name := range rest {
		groups = append(groups, categoryGroup{category: name, markets: buckets[name]})
	}
	return groups
}

// writeRow emits one comma-separated row with every field double-quoted,
// matching the format downstream spreadsheets already ingest. Embedded
// quotes are doubled per RFC 4180.
func writeRow(buf *bytes.Buffer, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}
