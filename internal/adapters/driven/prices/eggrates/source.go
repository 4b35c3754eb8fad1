// Package eggrates scrapes per-city egg pricing tables from eggrates.pk.
package eggrates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// DefaultBaseURL is the pricing page.
const DefaultBaseURL = "https://eggrates.pk/"

const defaultTimeout = 20 * time.Second

// defaultCities are the city sections the page publishes tables for.
var defaultCities = []string{"Islamabad", "Lahore", "Karachi", "Peshawar"}

// Ensure Source implements the interface.
var _ driven.PriceSource = (*Source)(nil)

// Config holds configuration for the pricing page scraper.
type Config struct {
	// BaseURL overrides the page URL (for testing).
	BaseURL string

	// Cities restricts which city sections are scraped.
	Cities []string

	// Timeout for HTTP requests.
	Timeout time.Duration
}

// Source implements driven.PriceSource by scraping the pricing page.
// The page marks each city's table with the kb-table class and precedes
// it with an h3 heading naming the city.
type Source struct {
	config Config
	client *http.Client
}

// NewSource creates a pricing page scraper.
func NewSource(config Config) *Source {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if len(config.Cities) == 0 {
		config.Cities = defaultCities
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	return &Source{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Fetch returns the current pricing tables.
func (s *Source) Fetch(ctx context.Context) ([]domain.CityPrices, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.BaseURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch pricing page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pricing page request failed with status %d", resp.StatusCode)
	}

	tables, err := s.parse(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("pricing page: %w: no city tables found", domain.ErrNotFound)
	}
	return tables, nil
}

// parse walks the page, pairing each recognised city heading with the
// next kb-table that follows it in document order.
func (s *Source) parse(r io.Reader) ([]domain.CityPrices, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse pricing page: %w", err)
	}

	var tables []domain.CityPrices
	var current *domain.CityPrices

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h3":
				if city := s.matchCity(textContent(n)); city != "" {
					if current != nil && len(current.Entries) > 0 {
						tables = append(tables, *current)
					}
					current = &domain.CityPrices{City: city}
				}
			case "table":
				if current != nil && hasClass(n, "kb-table") {
					current.Entries = append(current.Entries, parseRows(n)...)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if current != nil && len(current.Entries) > 0 {
		tables = append(tables, *current)
	}
	return tables, nil
}

// matchCity returns the configured city named in the heading, or "".
func (s *Source) matchCity(heading string) string {
	for _, city := range s.config.Cities {
		if strings.Contains(heading, city) {
			return city
		}
	}
	return ""
}

// parseRows extracts (quantity, price) pairs from a table's rows.
// Rows with fewer than two cells are skipped, as is a header row.
func parseRows(table *html.Node) []domain.PriceEntry {
	var entries []domain.PriceEntry

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			cells := childCells(n)
			if len(cells) >= 2 && !isHeaderRow(n) {
				quantity := strings.TrimSpace(textContent(cells[0]))
				price := strings.TrimSpace(textContent(cells[1]))
				if quantity != "" && price != "" {
					entries = append(entries, domain.PriceEntry{Quantity: quantity, Price: price})
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(table)

	return entries
}

func childCells(row *html.Node) []*html.Node {
	var cells []*html.Node
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, c)
		}
	}
	return cells
}

func isHeaderRow(row *html.Node) bool {
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "td" {
			return false
		}
	}
	return true
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
