package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// CartData maps a composite variant key ("productId:size:color") to a quantity.
// The whole mapping is stored as a single JSONB column on the user and is
// overwritten wholesale on every cart update (last write wins).
type CartData map[string]int

func (c CartData) Value() (driver.Value, error) {
	if c == nil {
		c = CartData{}
	}
	return json.Marshal(c)
}

func (c *CartData) Scan(value interface{}) error {
	if value == nil {
		*c = CartData{}
		return nil
	}
	b, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, c)
}

// StringList is a JSONB-backed string slice (image URLs, sizes, colors).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	b, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, l)
}

// ColorImages maps a color token to the image URLs shot for that color.
type ColorImages map[string][]string

func (m ColorImages) Value() (driver.Value, error) {
	if m == nil {
		m = ColorImages{}
	}
	return json.Marshal(m)
}

func (m *ColorImages) Scan(value interface{}) error {
	if value == nil {
		*m = ColorImages{}
		return nil
	}
	b, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, m)
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("unsupported type for JSONB column")
	}
}
