// Package services contains the application core: the answering pipeline
// (gate, retrieval, generation, enrichment, composition) and the
// auxiliary tools (weather advisories, lab analysis, diagnosis, profit,
// prices, price monitoring). Services depend only on domain types and
// driven ports; adapters are injected at composition time.
package services
