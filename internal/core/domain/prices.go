package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// PriceEntry is one (quantity label, price) pair from a pricing table.
type PriceEntry struct {
	// Quantity is the label, e.g. "1 Dozen" or "30 Eggs Tray".
	Quantity string

	// Price is the listed price text, currency included.
	Price string
}

// CityPrices holds the pricing table for one city.
type CityPrices struct {
	City    string
	Entries []PriceEntry
}

// NormalizePrices serialises price tables into a stable textual form.
// The serialisation depends only on the table content, not on upstream
// markup, so hashing it detects real content changes rather than
// cosmetic HTML churn.
func NormalizePrices(tables []CityPrices) string {
	var b strings.Builder
	for _, t := range tables {
		b.WriteString(strings.TrimSpace(t.City))
		b.WriteString("\n")
		for _, e := range t.Entries {
			b.WriteString(strings.TrimSpace(e.Quantity))
			b.WriteString("|")
			b.WriteString(strings.TrimSpace(e.Price))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// HashPrices returns the hex digest of the normalised table content.
func HashPrices(tables []CityPrices) string {
	sum := sha256.Sum256([]byte(NormalizePrices(tables)))
	return hex.EncodeToString(sum[:])
}
