package domain

import "time"

type Download struct {
	ID        string    `db:"id"         json:"id"         csv:"id"`
	ArtID     string    `db:"art_id"     json:"artId"      csv:"art_id"`
	CompanyID string    `db:"company_id" json:"companyId"  csv:"company_id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"  csv:"created_at"`

	// Art is joined at read time and reflects the art's current state.
	Art *Art `db:"-" json:"art,omitempty" csv:"-"`
}

type DownloadStats struct {
	TotalDownloads      int                 `json:"totalDownloads"`
	DownloadsByCategory map[ArtCategory]int `json:"downloadsByCategory"`
	DownloadsByType     map[ArtType]int     `json:"downloadsByType"`
}

// NewDownloadStats counts downloads by the category and type of their art.
// Downloads without a joined art only contribute to the total.
func NewDownloadStats(downloads []*Download) *DownloadStats {
	stats := &DownloadStats{
		TotalDownloads:      len(downloads),
		DownloadsByCategory: make(map[ArtCategory]int),
		DownloadsByType:     make(map[ArtType]int),
	}

	for _, d := range downloads {
		if d.Art == nil {
			continue
		}

		stats.DownloadsByCategory[d.Art.Category]++
		stats.DownloadsByType[d.Art.Type]++
	}

	return stats
}
