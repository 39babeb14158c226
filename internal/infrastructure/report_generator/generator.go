package report_generator

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/jszwec/csvutil"
	"github.com/postplus/postplus_api/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05 MST"

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

type downloadRecord struct {
	DownloadID  string    `csv:"download_id"`
	CreatedAt   time.Time `csv:"downloaded_at"`
	ArtID       string    `csv:"art_id"`
	ArtTitle    string    `csv:"art_title"`
	ArtType     string    `csv:"art_type"`
	ArtCategory string    `csv:"art_category"`
}

// DownloadsCSV renders downloads as CSV with a header row.
func (g *Generator) DownloadsCSV(downloads []*domain.Download) ([]byte, error) {
	records := make([]downloadRecord, 0, len(downloads))
	for _, d := range downloads {
		record := downloadRecord{
			DownloadID: d.ID,
			CreatedAt:  d.CreatedAt.UTC(),
			ArtID:      d.ArtID,
		}

		if d.Art != nil {
			record.ArtTitle = d.Art.Title
			record.ArtType = string(d.Art.Type)
			record.ArtCategory = string(d.Art.Category)
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		header, err := csvutil.Header(downloadRecord{}, "csv")
		if err != nil {
			return nil, fmt.Errorf("failed to build csv header: %w", err)
		}

		return []byte(strings.Join(header, ",") + "\n"), nil
	}

	data, err := csvutil.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal downloads: %w", err)
	}

	return data, nil
}

// StatsPDF renders a one-page download summary for a company.
func (g *Generator) StatsPDF(company *domain.Company, stats *domain.DownloadStats, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		text.NewRow(12, "Download report", props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}),
		text.NewRow(8, company.Name, props.Text{Size: 11, Align: align.Center}),
		text.NewRow(8, "Generated at "+generatedAt.UTC().Format(timeLayout), props.Text{Size: 8, Align: align.Center}),
		text.NewRow(12, fmt.Sprintf("Total downloads: %d", stats.TotalDownloads), props.Text{Size: 12, Style: fontstyle.Bold, Top: 4}),
	)

	m.AddRows(section("Downloads by category", stats.DownloadsByCategory)...)
	m.AddRows(section("Downloads by type", stats.DownloadsByType)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func section[K ~string](title string, counts map[K]int) []core.Row {
	rows := []core.Row{
		text.NewRow(10, title, props.Text{Size: 11, Style: fontstyle.Bold, Top: 3}),
	}

	if len(counts) == 0 {
		return append(rows, text.NewRow(7, "No downloads", props.Text{Size: 9, Style: fontstyle.Italic}))
	}

	keys := slices.SortedFunc(maps.Keys(counts), func(a, b K) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	for _, key := range keys {
		rows = append(rows, text.NewRow(7, fmt.Sprintf("%s: %d", key, counts[key]), props.Text{Size: 9}))
	}

	return rows
}
