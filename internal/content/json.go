// internal/content/json.go
//
// sql.Scanner / driver.Valuer wrappers for the jsonb columns on
// post_insights (tags, tech_stack, best_practices, what_not_to_do).
//
// The wrappers keep sqlx's StructScan happy without a row-mapper layer:
// Postgres hands jsonb back as []byte, and we unmarshal in place.  A NULL
// column scans to the zero value rather than erroring, because ingestion
// briefly writes partial rows while a post is still processing.

package content

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a jsonb array of strings.
type StringList []string

func (l *StringList) Scan(src any) error      { return scanJSON(src, l) }
func (l StringList) Value() (driver.Value, error) { return json.Marshal(l) }

// TechStackJSON is the jsonb tech_stack column.
type TechStackJSON struct {
	TechStack
}

func (t *TechStackJSON) Scan(src any) error { return scanJSON(src, &t.TechStack) }

func (t TechStackJSON) Value() (driver.Value, error) { return json.Marshal(t.TechStack) }

// MarshalJSON flattens the wrapper so API payloads see the plain object.
func (t TechStackJSON) MarshalJSON() ([]byte, error) { return json.Marshal(t.TechStack) }

// UnmarshalJSON mirrors MarshalJSON.
func (t *TechStackJSON) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &t.TechStack) }

// PracticeList is a jsonb array of practice items.
type PracticeList []PracticeItem

func (p *PracticeList) Scan(src any) error      { return scanJSON(src, p) }
func (p PracticeList) Value() (driver.Value, error) { return json.Marshal(p) }

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	}
	return fmt.Errorf("content: cannot scan %T into JSON column", src)
}
