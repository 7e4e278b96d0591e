package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPropertyGrant_Contains(t *testing.T) {
	all := AllProperties()
	if !all.Contains("A") || !all.Contains("anything") {
		t.Fatalf("wildcard must cover every property")
	}

	g := Properties("A", "B", "", "A")
	if !g.Contains("A") || !g.Contains("B") {
		t.Fatalf("expected A and B to be covered: %v", g)
	}
	if g.Contains("C") || g.Contains("") {
		t.Fatalf("unexpected coverage: %v", g)
	}
	if len(g.IDs()) != 2 {
		t.Fatalf("expected duplicates and empties dropped, got %v", g.IDs())
	}

	var zero PropertyGrant
	if zero.Contains("A") {
		t.Fatalf("zero grant must cover nothing")
	}
}

func TestPropertyGrant_JSON(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		wildcard bool
		ids      []string
		out      string
	}{
		{name: "wildcard", in: `"*"`, wildcard: true, out: `"*"`},
		{name: "array", in: `["A","B"]`, ids: []string{"A", "B"}, out: `["A","B"]`},
		{name: "empty array", in: `[]`, ids: []string{}, out: `[]`},
		{name: "null", in: `null`, out: `[]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g PropertyGrant
			require.NoError(t, json.Unmarshal([]byte(tc.in), &g))
			assert.Equal(t, tc.wildcard, g.IsWildcard())
			if !tc.wildcard {
				assert.ElementsMatch(t, tc.ids, g.IDs())
			}

			out, err := json.Marshal(g)
			require.NoError(t, err)
			assert.JSONEq(t, tc.out, string(out))
		})
	}
}

func TestPropertyGrant_JSONRejectsGarbage(t *testing.T) {
	for _, in := range []string{`"all"`, `[1,2]`, `{"a":1}`, `true`} {
		var g PropertyGrant
		if err := json.Unmarshal([]byte(in), &g); err == nil {
			t.Fatalf("expected error for %s", in)
		}
	}
}

type grantDoc struct {
	Properties PropertyGrant `bson:"properties"`
}

func TestPropertyGrant_BSON(t *testing.T) {
	raw, err := bson.Marshal(grantDoc{Properties: AllProperties()})
	require.NoError(t, err)
	assert.Equal(t, WildcardGrant, bson.Raw(raw).Lookup("properties").StringValue())

	var back grantDoc
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.True(t, back.Properties.IsWildcard())

	raw, err = bson.Marshal(grantDoc{Properties: Properties("A", "B")})
	require.NoError(t, err)
	back = grantDoc{}
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.False(t, back.Properties.IsWildcard())
	assert.ElementsMatch(t, []string{"A", "B"}, back.Properties.IDs())

	raw, err = bson.Marshal(bson.M{"properties": nil})
	require.NoError(t, err)
	back = grantDoc{Properties: AllProperties()}
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.False(t, back.Properties.Contains("A"))
	assert.False(t, back.Properties.IsWildcard())
}
