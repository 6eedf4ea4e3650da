package schema

// CatalogGameTable represents the 'catalog.game' table
type CatalogGameTable struct {
	Table          string
	ID             string
	Slug           string
	Title          string
	Description    string
	Instructions   string
	ThumbnailURL   string
	GameURL        string
	Width          string
	Height         string
	Status         string
	IsFeatured     string
	PlayCount      string
	Rating         string
	RatingCount    string
	SEOTitle       string
	SEODescription string
	ReleasedAt     string
	CreatedAt      string
	UpdatedAt      string
}

// CatalogGame is the schema definition for catalog.game
var CatalogGame = CatalogGameTable{
	Table:          "catalog.game",
	ID:             "id",
	Slug:           "slug",
	Title:          "title",
	Description:    "description",
	Instructions:   "instructions",
	ThumbnailURL:   "thumbnailurl",
	GameURL:        "gameurl",
	Width:          "width",
	Height:         "height",
	Status:         "status",
	IsFeatured:     "isfeatured",
	PlayCount:      "playcount",
	Rating:         "rating",
	RatingCount:    "ratingcount",
	SEOTitle:       "seotitle",
	SEODescription: "seodescription",
	ReleasedAt:     "releasedat",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

func (t CatalogGameTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Title, t.Description, t.Instructions, t.ThumbnailURL,
		t.GameURL, t.Width, t.Height, t.Status, t.IsFeatured, t.PlayCount,
		t.Rating, t.RatingCount, t.SEOTitle, t.SEODescription, t.ReleasedAt,
		t.CreatedAt, t.UpdatedAt,
	}
}
