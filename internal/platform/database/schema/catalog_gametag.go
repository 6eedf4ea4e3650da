package schema

// CatalogGameTagTable represents the 'catalog.gametag' table
type CatalogGameTagTable struct {
	Table  string
	GameID string
	TagID  string
}

// CatalogGameTag is the schema definition for catalog.gametag
var CatalogGameTag = CatalogGameTagTable{
	Table:  "catalog.gametag",
	GameID: "gameid",
	TagID:  "tagid",
}
