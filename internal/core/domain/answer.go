package domain

import (
	"fmt"
	"strings"
)

// Fixed composer strings. These are part of the user-visible contract:
// tests and the TUI both rely on them verbatim.
const (
	// RefusalMessage is returned unchanged when the relevance gate rejects
	// a query. No retrieval, generation, or search happens in that case.
	RefusalMessage = "This assistant is specialised for poultry farming only. Please ask a poultry-related question."

	// PlaceholderNoKnowledge substitutes an empty knowledge-base section.
	PlaceholderNoKnowledge = "No answer found in the knowledge base."

	// PlaceholderNoWebResults substitutes an empty or failed web section.
	PlaceholderNoWebResults = "No relevant web results found."

	// PlaceholderNoVideos substitutes an empty or failed video section.
	PlaceholderNoVideos = "No video results found."
)

// Section names used in failure metadata.
const (
	SectionKnowledge = "knowledge"
	SectionWeb       = "web"
	SectionVideo     = "video"
)

// WebResult is a single hit from the web-search backend.
type WebResult struct {
	Title   string
	URL     string
	Snippet string
}

// VideoResult is a single hit from the video-search backend.
type VideoResult struct {
	Title   string
	URL     string
	Channel string
}

// SectionFailure records which section of a composite answer degraded
// and why. Failures never abort the other sections.
type SectionFailure struct {
	Section string
	Reason  string
}

// CompositeAnswer is the merged result of one assistant turn: the
// knowledge-base answer plus web and video enrichment, with attribution.
// Created per query, appended to the session, never mutated afterwards.
type CompositeAnswer struct {
	// Knowledge is the generated answer from the retrieval pipeline.
	Knowledge string

	// SourceChunks are the chunks actually supplied to the generator,
	// kept for citation.
	SourceChunks []RetrievedChunk

	// Web holds the web-search results, provider order preserved.
	Web []WebResult

	// Videos holds the video-search results, provider order preserved.
	Videos []VideoResult

	// Refused is true when the relevance gate rejected the query.
	Refused bool

	// Failures records sections that degraded to their placeholder.
	Failures []SectionFailure
}

// Render formats the composite answer as the fixed three-section message.
// Section order is always knowledge base, web, video.
func (a *CompositeAnswer) Render() string {
	if a.Refused {
		return RefusalMessage
	}

	var b strings.Builder

	b.WriteString("## Knowledge Base\n")
	if a.Knowledge == "" {
		b.WriteString(PlaceholderNoKnowledge)
	} else {
		b.WriteString(a.Knowledge)
	}
	if len(a.SourceChunks) > 0 {
		b.WriteString("\n\nSources: ")
		b.WriteString(strings.Join(a.sourceNames(), ", "))
	}

	b.WriteString("\n\n## Web Results\n")
	if len(a.Web) == 0 {
		b.WriteString(PlaceholderNoWebResults)
	} else {
		for _, r := range a.Web {
			fmt.Fprintf(&b, "- %s (%s)\n  %s\n", r.Title, r.URL, r.Snippet)
		}
	}

	b.WriteString("\n## Video Results\n")
	if len(a.Videos) == 0 {
		b.WriteString(PlaceholderNoVideos)
	} else {
		for _, v := range a.Videos {
			fmt.Fprintf(&b, "- %s (%s) - %s\n", v.Title, v.URL, v.Channel)
		}
	}

	return b.String()
}

// sourceNames returns the distinct source documents cited by the answer,
// first-seen order preserved.
func (a *CompositeAnswer) sourceNames() []string {
	seen := make(map[string]bool, len(a.SourceChunks))
	var names []string
	for _, rc := range a.SourceChunks {
		if rc.Chunk.Source == "" || seen[rc.Chunk.Source] {
			continue
		}
		seen[rc.Chunk.Source] = true
		names = append(names, rc.Chunk.Source)
	}
	return names
}

// FailureFor returns the failure reason for a section, if any.
func (a *CompositeAnswer) FailureFor(section string) (string, bool) {
	for _, f := range a.Failures {
		if f.Section == section {
			return f.Reason, true
		}
	}
	return "", false
}
