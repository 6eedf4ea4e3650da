package schema

// CatalogGameCategoryTable represents the 'catalog.gamecategory' table
type CatalogGameCategoryTable struct {
	Table      string
	GameID     string
	CategoryID string
	IsMain     string
}

// CatalogGameCategory is the schema definition for catalog.gamecategory
var CatalogGameCategory = CatalogGameCategoryTable{
	Table:      "catalog.gamecategory",
	GameID:     "gameid",
	CategoryID: "categoryid",
	IsMain:     "ismain",
}
