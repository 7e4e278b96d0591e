package domain

import (
	"encoding/json"
	"fmt"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// WildcardGrant is the stored and wire form of an all-properties grant.
const WildcardGrant = "*"

// PropertyGrant is either the wildcard (every property) or an enumerated set
// of property identifiers. The zero value grants nothing.
type PropertyGrant struct {
	all bool
	ids []string
}

// AllProperties returns the wildcard grant.
func AllProperties() PropertyGrant {
	return PropertyGrant{all: true}
}

// Properties returns a grant over the given identifiers. Empty and duplicate
// identifiers are dropped; order is irrelevant.
func Properties(ids ...string) PropertyGrant {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return PropertyGrant{ids: out}
}

// IsWildcard reports whether the grant covers every property.
func (g PropertyGrant) IsWildcard() bool { return g.all }

// IDs returns a copy of the enumerated identifiers (nil for the wildcard).
func (g PropertyGrant) IDs() []string {
	if g.all {
		return nil
	}
	return slices.Clone(g.ids)
}

// Contains reports whether property is covered by the grant.
func (g PropertyGrant) Contains(property string) bool {
	if g.all {
		return true
	}
	return property != "" && slices.Contains(g.ids, property)
}

func (g PropertyGrant) String() string {
	if g.all {
		return WildcardGrant
	}
	return fmt.Sprintf("%v", g.ids)
}

func (g PropertyGrant) wire() any {
	if g.all {
		return WildcardGrant
	}
	if g.ids == nil {
		return []string{}
	}
	return g.ids
}

func (g PropertyGrant) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.wire())
}

func (g *PropertyGrant) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*g = PropertyGrant{}
	case string:
		if v != WildcardGrant {
			return fmt.Errorf("property grant: unexpected string %q", v)
		}
		*g = AllProperties()
	case []any:
		ids := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("property grant: non-string identifier %v", item)
			}
			ids = append(ids, s)
		}
		*g = Properties(ids...)
	default:
		return fmt.Errorf("property grant: unsupported value %T", raw)
	}
	return nil
}

func (g PropertyGrant) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(g.wire())
}

func (g *PropertyGrant) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeNull, bson.TypeUndefined:
		*g = PropertyGrant{}
	case bson.TypeString:
		if s := raw.StringValue(); s != WildcardGrant {
			return fmt.Errorf("property grant: unexpected string %q", s)
		}
		*g = AllProperties()
	case bson.TypeArray:
		var ids []string
		if err := raw.Unmarshal(&ids); err != nil {
			return fmt.Errorf("property grant: %w", err)
		}
		*g = Properties(ids...)
	default:
		return fmt.Errorf("property grant: unsupported bson type %s", t)
	}
	return nil
}
