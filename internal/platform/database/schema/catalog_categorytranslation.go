package schema

// CatalogCategoryTranslationTable represents the 'catalog.categorytranslation' table
type CatalogCategoryTranslationTable struct {
	Table          string
	CategoryID     string
	Locale         string
	Name           string
	Description    string
	SEOTitle       string
	SEODescription string
}

// CatalogCategoryTranslation is the schema definition for catalog.categorytranslation
var CatalogCategoryTranslation = CatalogCategoryTranslationTable{
	Table:          "catalog.categorytranslation",
	CategoryID:     "categoryid",
	Locale:         "locale",
	Name:           "name",
	Description:    "description",
	SEOTitle:       "seotitle",
	SEODescription: "seodescription",
}
