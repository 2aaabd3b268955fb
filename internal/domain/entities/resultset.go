package entities

// ResultSet is a generic tabular query result. Values are rendered to
// strings by the storage adapter; presentation stays with the caller.
type ResultSet struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Empty reports whether the result holds no rows.
func (r *ResultSet) Empty() bool {
	return r == nil || len(r.Rows) == 0
}
