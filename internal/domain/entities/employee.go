package entities

// Employee is one employee record. Reference data owned by the storage
// engine; the canonical code (e.g. "E10001") is the unique key.
type Employee struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Dept string `json:"dept"`
}

// ResolvedEmployee pairs a canonical code with the display name it
// resolved to. Request-scoped; never persisted.
type ResolvedEmployee struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
