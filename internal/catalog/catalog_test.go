package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProjects() []Project {
	return []Project{
		{Title: "A", Tier: TierPrimary},
		{Title: "B", Tier: TierPrimary},
		{Title: "D", Tier: TierSecondary},
		{Title: "C", Tier: TierPrimary},
		{Title: "E", Tier: TierSecondary},
	}
}

func TestLoad_EmbeddedPortfolio(t *testing.T) {
	p, err := Load()
	require.NoError(t, err)

	c := p.Catalog()
	require.NotNil(t, c)
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, []string{"Poppa Vitamins", "Cakely", "Taweret"}, c.PrimaryIDs())
	assert.Equal(t, []string{"Steflix", "Peach Jump"}, c.SecondaryIDs())
	assert.Equal(t, "Stephanie Ayomide Adetomiwa", p.Owner.Name)
	assert.Len(t, p.Tech, 7)
	assert.Len(t, p.Credentials, 2)
	assert.NotEmpty(t, p.Contact.Email)
}

func TestNew_PreservesOrderAndTiers(t *testing.T) {
	c, err := New(testProjects())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, c.PrimaryIDs())
	assert.Equal(t, []string{"D", "E"}, c.SecondaryIDs())
	assert.Equal(t, 2, c.Index("D"))
	assert.Equal(t, -1, c.Index("Z"))

	tier, ok := c.TierOf("E")
	assert.True(t, ok)
	assert.Equal(t, TierSecondary, tier)

	_, ok = c.TierOf("Z")
	assert.False(t, ok)
}

func TestNew_CopiesInput(t *testing.T) {
	projects := testProjects()
	c := MustNew(projects)
	projects[0].Title = "mutated"

	_, ok := c.Lookup("A")
	assert.True(t, ok, "catalog must not alias the caller's slice")

	items := c.Items()
	items[1].Title = "also mutated"
	_, ok = c.Lookup("B")
	assert.True(t, ok)
	assert.Equal(t, "B", c.Items()[1].Title)
}

func TestByTier(t *testing.T) {
	c := MustNew(testProjects())
	var titles []string
	for _, p := range c.ByTier(TierSecondary) {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"D", "E"}, titles)
}

func TestValidateProjects(t *testing.T) {
	tests := []struct {
		name     string
		projects []Project
		wantErr  string
	}{
		{"empty", nil, "no projects"},
		{"duplicate", []Project{{Title: "A", Tier: TierPrimary}, {Title: "A", Tier: TierPrimary}}, "duplicate"},
		{"blank title", []Project{{Title: " ", Tier: TierPrimary}}, "empty title"},
		{"unknown tier", []Project{{Title: "A", Tier: TierPrimary}, {Title: "B", Tier: "bonus"}}, "unknown tier"},
		{"no primary", []Project{{Title: "A", Tier: TierSecondary}}, "no primary"},
		{"valid", testProjects(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateProjects(tt.projects)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateProjects_ReportsAllProblems(t *testing.T) {
	err := validateProjects([]Project{
		{Title: "A", Tier: "bonus"},
		{Title: "A", Tier: "bonus"},
	})
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "duplicate")
	assert.Contains(t, msg, "unknown tier")
	assert.Contains(t, msg, "no primary")
	assert.True(t, strings.HasPrefix(msg, "catalog validation failed"))
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew(nil) })
}

func TestDecode_SchemaRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing projects", `{"owner":{"name":"x","roles":[]},"contact":{"email":"a@b"}}`},
		{"bad tier", `{"owner":{"name":"x","roles":[]},"contact":{"email":"a@b"},
			"projects":[{"title":"A","tier":"gold","desc":""}]}`},
		{"extra project field", `{"owner":{"name":"x","roles":[]},"contact":{"email":"a@b"},
			"projects":[{"title":"A","tier":"primary","desc":"","stars":5}]}`},
		{"empty projects", `{"owner":{"name":"x","roles":[]},"contact":{"email":"a@b"},"projects":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestDecode_StructuralErrorAfterSchema(t *testing.T) {
	doc := `{"owner":{"name":"x","roles":[]},"contact":{"email":"a@b"},
		"projects":[{"title":"A","tier":"primary","desc":""},{"title":"A","tier":"secondary","desc":""}]}`
	_, err := Decode([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate project title")
}

func TestTierLabel(t *testing.T) {
	assert.Equal(t, "Flagship", TierPrimary.Label())
	assert.Equal(t, "Supporting", TierSecondary.Label())
	assert.Equal(t, "other", Tier("other").Label())
}
