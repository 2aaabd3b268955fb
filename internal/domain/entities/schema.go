package entities

import "strings"

// FieldType categorizes a catalog field.
type FieldType string

// Catalog field types.
const (
	FieldIdentifier FieldType = "identifier"
	FieldText       FieldType = "text"
	FieldTimestamp  FieldType = "timestamp"
)

// Field is one column of a catalog table.
type Field struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
}

// Table is one entity of the schema catalog.
type Table struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Catalog describes the tables a generated statement may reference. It is
// the single allow-list source of truth: the same catalog grounds the
// model's prompt and bounds the query guard. Treat instances as immutable.
type Catalog struct {
	Tables []Table `json:"tables"`
}

// DefaultCatalog returns the fixed three-table seating schema.
func DefaultCatalog() Catalog {
	return Catalog{
		Tables: []Table{
			{
				Name: "Seat",
				Fields: []Field{
					{Name: "SeatId", Type: FieldIdentifier},
					{Name: "Label", Type: FieldText},
					{Name: "Area", Type: FieldText},
					{Name: "SeatType", Type: FieldText},
				},
			},
			{
				Name: "Employee",
				Fields: []Field{
					{Name: "EmpCode", Type: FieldIdentifier},
					{Name: "Name", Type: FieldText},
					{Name: "Dept", Type: FieldText},
				},
			},
			{
				Name: "SeatLog",
				Fields: []Field{
					{Name: "LogId", Type: FieldIdentifier},
					{Name: "SeatId", Type: FieldIdentifier},
					{Name: "EmpCode", Type: FieldIdentifier},
					{Name: "CheckIn", Type: FieldTimestamp},
					{Name: "CheckOut", Type: FieldTimestamp},
				},
			},
		},
	}
}

// TableNames returns the allow-listed table names in catalog order.
func (c Catalog) TableNames() []string {
	names := make([]string, 0, len(c.Tables))
	for _, t := range c.Tables {
		names = append(names, t.Name)
	}
	return names
}

// Allows reports whether a table reference is on the allow-list. The
// comparison is case-insensitive and ignores a schema qualifier such as
// "dbo." so that references written either way are treated alike.
func (c Catalog) Allows(ref string) bool {
	name := NormalizeTableRef(ref)
	for _, t := range c.Tables {
		if strings.ToLower(t.Name) == name {
			return true
		}
	}
	return false
}

// NormalizeTableRef lowercases a table reference and strips an optional
// schema qualifier and identifier quoting.
func NormalizeTableRef(ref string) string {
	name := strings.ToLower(strings.TrimSpace(ref))
	name = strings.Trim(name, "[]`\"")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.Trim(name, "[]`\"")
}

// PromptHint renders the catalog as the grounding block appended to the
// classifier's system prompt.
func (c Catalog) PromptHint() string {
	var b strings.Builder
	b.WriteString("Available tables (only these ")
	b.WriteString(strings.Join(c.TableNames(), ", "))
	b.WriteString("):\n")
	for _, t := range c.Tables {
		b.WriteString("  ")
		b.WriteString(t.Name)
		b.WriteString("(")
		for i, f := range t.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(" ")
			b.WriteString(string(f.Type))
		}
		b.WriteString(")\n")
	}
	return b.String()
}
