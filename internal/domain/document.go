package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Document struct {
	Id         DocumentId
	ThreadId   ThreadId
	Title      string
	Content    DocumentContent
	Type       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ViewCount  int
	LastViewed *time.Time
}

// DocumentData carries the client-writable document fields.
// Used both for creation and for full replace.
type DocumentData struct {
	Title    string
	ThreadId ThreadId
	Content  DocumentContent
	Type     string
}

// DocumentContent is either a plain string or a two-dimensional grid of
// strings. On the wire and in the database it is plain JSON; no validation
// beyond well-formed serialization is applied.
type DocumentContent struct {
	Text   string
	Grid   [][]string
	IsGrid bool
}

func TextContent(s string) DocumentContent {
	return DocumentContent{Text: s}
}

func GridContent(g [][]string) DocumentContent {
	return DocumentContent{Grid: g, IsGrid: true}
}

func (c DocumentContent) MarshalJSON() ([]byte, error) {
	if c.IsGrid {
		return json.Marshal(c.Grid)
	}
	return json.Marshal(c.Text)
}

func (c *DocumentContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = TextContent(s)
		return nil
	}
	var g [][]string
	if err := json.Unmarshal(data, &g); err == nil {
		*c = GridContent(g)
		return nil
	}
	return fmt.Errorf("document content must be a string or a grid of strings")
}

// Value implements driver.Valuer so content can be stored in a jsonb column.
func (c DocumentContent) Value() (driver.Value, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Scan implements sql.Scanner for reading the jsonb column back.
func (c *DocumentContent) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return c.UnmarshalJSON(v)
	case string:
		return c.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("cannot scan %T into DocumentContent", src)
	}
}
