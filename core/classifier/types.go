package classifier

import (
	"bytes"
	"encoding/json"

	"ua-capabilities/core/utils"
)

// Unknown is emitted for properties that no entry of the inheritance chain defines.
const Unknown = "unknown"

// Entry is one row of the dataset.
type Entry struct {
	// Pattern is the wildcard template ('*' and '?') describing matching user agents.
	Pattern string
	// Parent is the pattern of the entry this one inherits from. Empty for roots.
	Parent string
	// Properties holds the values declared on this row. Empty cells are omitted
	// so that they inherit from the parent chain.
	Properties map[string]string
	// Ordinal is the position of the row in the source, starting at 0.
	Ordinal int
}

// Property is a resolved name/value pair.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Capabilities is the flattened result of a lookup. It always carries one
// Property per dataset column, in header order.
type Capabilities struct {
	Pattern    string
	Parent     string
	Properties []Property
	IsMobile   bool
	IsTablet   bool
}

// Get returns the resolved value of a property.
func (c Capabilities) Get(name string) (string, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Bool interprets a property as a boolean ("true" or "1").
func (c Capabilities) Bool(name string) bool {
	v, ok := c.Get(name)
	if !ok {
		return false
	}
	return utils.ToBool(v)
}

// Map returns the properties as a fresh map.
func (c Capabilities) Map() map[string]string {
	m := make(map[string]string, len(c.Properties))
	for _, p := range c.Properties {
		m[p.Name] = p.Value
	}
	return m
}

// MarshalJSON renders a flat object: pattern, parent, every property in
// header order, then the derived isMobile/isTablet flags. Property values
// spelled "true"/"false" are emitted as JSON booleans.
func (c Capabilities) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if err := write("pattern", c.Pattern); err != nil {
		return nil, err
	}
	if err := write("parent", c.Parent); err != nil {
		return nil, err
	}
	for _, p := range c.Properties {
		if p.Name == "isMobile" || p.Name == "isTablet" {
			continue
		}
		var value any = p.Value
		if b, ok := utils.ParseBool(p.Value); ok {
			value = b
		}
		if err := write(p.Name, value); err != nil {
			return nil, err
		}
	}
	if err := write("isMobile", c.IsMobile); err != nil {
		return nil, err
	}
	if err := write("isTablet", c.IsTablet); err != nil {
		return nil, err
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
