package stashmate

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file handles the import/export formats. CSV is the interchange format
// of the surrounding spreadsheet world; JSON import recovers items from
// arbitrary backup dumps.

// csvHeader is the fixed column order of the CSV interchange format.
var csvHeader = []string{"id", "name", "category", "condition", "qty", "cost", "price", "source", "acquired", "status", "soldOn"}

// ExportCSV writes all items as CSV with the fixed column order. Fields are
// quoted per RFC 4180, so embedded commas survive a round trip.
func ExportCSV(w io.Writer, items []Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, it := range items {
		soldOn := ""
		if !it.SoldOn.IsZero() {
			soldOn = it.SoldOn.String()
		}
		record := []string{
			it.ID,
			it.Name,
			it.Category,
			it.Condition,
			strconv.Itoa(it.Qty),
			it.Cost.Amount().String(),
			it.Price.Amount().String(),
			it.Source,
			it.Acquired.String(),
			it.Status.String(),
			soldOn,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV row for item %q: %w", it.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads items from CSV. Columns are matched by header name, so
// reordered or partial exports still import. Parsing is tolerant of dirty
// data: bad quantities default to 1, bad amounts to 0, bad dates to "no
// date", and status accepts both display names and legacy 0/1/2 codes.
func ImportCSV(r io.Reader) ([]Item, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["name"]; !ok {
		return nil, fmt.Errorf("CSV header has no %q column", "name")
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var items []Item
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV row: %w", err)
		}
		if field(record, "name") == "" {
			continue // skip blank filler rows
		}
		items = append(items, Item{
			ID:        field(record, "id"),
			Name:      field(record, "name"),
			Category:  field(record, "category"),
			Condition: field(record, "condition"),
			Qty:       toQty(field(record, "qty")),
			Cost:      USD(toAmount(field(record, "cost"))),
			Price:     USD(toAmount(field(record, "price"))),
			Source:    field(record, "source"),
			Acquired:  toDate(field(record, "acquired")),
			Status:    toStatus(field(record, "status")),
			SoldOn:    toDate(field(record, "soldOn")),
		})
	}
	return items, nil
}

// ImportJSON reads items from an arbitrary JSON document. The path is a
// JSONPath expression locating the array of item objects (e.g. "$.items" or
// "$" when the document is the array itself); item fields are matched by the
// CSV column names with the same tolerant coercion rules.
func ImportJSON(r io.Reader, path string) ([]Item, error) {
	if path == "" {
		path = "$"
	}
	var doc interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse JSON document: %w", err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve JSON path %q: %w", path, err)
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("JSON path %q does not select an array", path)
	}

	var items []Item
	for _, elem := range arr {
		obj, ok := elem.(map[string]interface{})
		if !ok {
			continue
		}
		name := toText(obj["name"])
		if name == "" {
			continue
		}
		items = append(items, Item{
			ID:        toText(obj["id"]),
			Name:      name,
			Category:  toText(obj["category"]),
			Condition: toText(obj["condition"]),
			Qty:       toQty(toText(obj["qty"])),
			Cost:      USD(toAmount(toText(obj["cost"]))),
			Price:     USD(toAmount(toText(obj["price"]))),
			Source:    toText(obj["source"]),
			Acquired:  toDate(toText(obj["acquired"])),
			Status:    toStatus(toText(obj["status"])),
			SoldOn:    toDate(toText(obj["soldOn"])),
		})
	}
	return items, nil
}

// coercion helpers, mirroring the tolerance the interchange formats need.

func toText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func toQty(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func toAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func toDate(s string) Date {
	if s == "" {
		return Date{}
	}
	d, err := ParseDate(s)
	if err != nil {
		return Date{}
	}
	return d
}

func toStatus(s string) Status {
	st, err := ParseStatus(s)
	if err != nil {
		return Listed
	}
	return st
}
