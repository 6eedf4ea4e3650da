package schema

// CatalogGameTranslationTable represents the 'catalog.gametranslation' table
type CatalogGameTranslationTable struct {
	Table          string
	GameID         string
	Locale         string
	Title          string
	Description    string
	Instructions   string
	SEOTitle       string
	SEODescription string
}

// CatalogGameTranslation is the schema definition for catalog.gametranslation
var CatalogGameTranslation = CatalogGameTranslationTable{
	Table:          "catalog.gametranslation",
	GameID:         "gameid",
	Locale:         "locale",
	Title:          "title",
	Description:    "description",
	Instructions:   "instructions",
	SEOTitle:       "seotitle",
	SEODescription: "seodescription",
}
