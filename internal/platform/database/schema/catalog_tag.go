package schema

// CatalogTagTable represents the 'catalog.tag' table
type CatalogTagTable struct {
	Table       string
	ID          string
	Slug        string
	Name        string
	Description string
	IsEnabled   string
	CreatedAt   string
}

// CatalogTag is the schema definition for catalog.tag
var CatalogTag = CatalogTagTable{
	Table:       "catalog.tag",
	ID:          "id",
	Slug:        "slug",
	Name:        "name",
	Description: "description",
	IsEnabled:   "isenabled",
	CreatedAt:   "createdat",
}

func (t CatalogTagTable) Columns() []string {
	return []string{t.ID, t.Slug, t.Name, t.Description, t.IsEnabled, t.CreatedAt}
}
