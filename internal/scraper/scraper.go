package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jdtait/bincal/internal/config"
	"github.com/jdtait/bincal/internal/record"
)

const (
	// cellSelector matches one calendar day cell on the council page.
	cellSelector = "div.calendar-table-cell"
	// pastDateClass marks cells the page itself considers past.
	pastDateClass = "past-date"
)

// ErrNoCells is returned when the page contains no calendar day cells at
// all. That means the site structure changed, so the run must fail loudly
// rather than quietly emit an empty calendar.
var ErrNoCells = errors.New("no calendar day cells found in page")

// Scraper fetches the bin-collection calendar page and extracts day cells.
type Scraper struct {
	client    *http.Client
	url       string
	userAgent string
}

// New creates a Scraper from the run configuration.
func New(cfg *config.Config) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:       cfg.URL,
		userAgent: cfg.UserAgent,
	}
}

// FetchCells performs the single GET and returns the raw day cells in
// document order. Any network failure, bad status, or structural change
// (zero cells) is an error that aborts the run.
func (s *Scraper) FetchCells() ([]record.Cell, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return ExtractCells(resp.Body)
}

// ExtractCells parses page markup and reduces every calendar day cell to
// a record.Cell. Returns ErrNoCells when the selector matches nothing.
func ExtractCells(r io.Reader) ([]record.Cell, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	cells := make([]record.Cell, 0)

	doc.Find(cellSelector).Each(func(i int, sel *goquery.Selection) {
		cell := record.Cell{
			PastDate: sel.HasClass(pastDateClass),
		}
		cell.DateText, _ = sel.Attr("title")

		li := sel.Find("li").First()
		if li.Length() > 0 {
			cell.HasType = true
			cell.TypeText = strings.TrimSpace(li.Text())
		}

		cells = append(cells, cell)
	})

	if len(cells) == 0 {
		return nil, ErrNoCells
	}

	return cells, nil
}
