package domain

import (
	"fmt"
	"time"
)

type ArtType string

const (
	ArtTypeStory ArtType = "STORY"
	ArtTypeFeed  ArtType = "FEED"
)

type ArtCategory string

const (
	CategoryChristmas   ArtCategory = "CHRISTMAS"
	CategoryNewYear     ArtCategory = "NEW_YEAR"
	CategoryEaster      ArtCategory = "EASTER"
	CategoryMothersDay  ArtCategory = "MOTHERS_DAY"
	CategoryFathersDay  ArtCategory = "FATHERS_DAY"
	CategoryBlackFriday ArtCategory = "BLACK_FRIDAY"
)

// Formats maps a format name (story, feed, thumbnail, ...) to its public URL.
type Formats map[string]string

type Art struct {
	ID          string      `db:"id"          json:"id"`
	Title       string      `db:"title"       json:"title"`
	Description string      `db:"description" json:"description"`
	Type        ArtType     `db:"type"        json:"type"`
	Category    ArtCategory `db:"category"    json:"category"`
	Formats     Formats     `db:"formats"     json:"formats"`
	CreatedAt   time.Time   `db:"created_at"  json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at"  json:"updatedAt"`
}

type ArtPatch struct {
	Title       *string
	Description *string
	Type        *ArtType
	Category    *ArtCategory
	Formats     Formats
}

func (p *ArtPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Type == nil && p.Category == nil && p.Formats == nil
}

// ArtFilter narrows an art listing. Empty fields impose no constraint.
type ArtFilter struct {
	Type     ArtType
	Category ArtCategory
}

// UploadFile is one named buffer of a multipart upload.
type UploadFile struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

const (
	ObjectKindArts      = "arts"
	ObjectKindCompanies = "companies"
)

// ObjectKey builds the storage key {kind}/{id}/{field}-{unix millis}-{filename}.
func ObjectKey(kind, id, field string, ts time.Time, filename string) string {
	return fmt.Sprintf("%s/%s/%s-%d-%s", kind, id, field, ts.UnixMilli(), filename)
}
