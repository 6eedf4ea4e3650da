package schema

// CatalogTagTranslationTable represents the 'catalog.tagtranslation' table
type CatalogTagTranslationTable struct {
	Table       string
	TagID       string
	Locale      string
	Name        string
	Description string
}

// CatalogTagTranslation is the schema definition for catalog.tagtranslation
var CatalogTagTranslation = CatalogTagTranslationTable{
	Table:       "catalog.tagtranslation",
	TagID:       "tagid",
	Locale:      "locale",
	Name:        "name",
	Description: "description",
}
