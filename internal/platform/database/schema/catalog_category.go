package schema

// CatalogCategoryTable represents the 'catalog.category' table
type CatalogCategoryTable struct {
	Table          string
	ID             string
	ParentID       string
	Slug           string
	Name           string
	Description    string
	Icon           string
	SortOrder      string
	IsEnabled      string
	SEOTitle       string
	SEODescription string
	CreatedAt      string
	UpdatedAt      string
}

// CatalogCategory is the schema definition for catalog.category
var CatalogCategory = CatalogCategoryTable{
	Table:          "catalog.category",
	ID:             "id",
	ParentID:       "parentid",
	Slug:           "slug",
	Name:           "name",
	Description:    "description",
	Icon:           "icon",
	SortOrder:      "sortorder",
	IsEnabled:      "isenabled",
	SEOTitle:       "seotitle",
	SEODescription: "seodescription",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

func (t CatalogCategoryTable) Columns() []string {
	return []string{
		t.ID, t.ParentID, t.Slug, t.Name, t.Description, t.Icon, t.SortOrder,
		t.IsEnabled, t.SEOTitle, t.SEODescription, t.CreatedAt, t.UpdatedAt,
	}
}
