package proof

import (
	"fmt"
	"html"
	"strings"

	"go-psi-bot/internal/models"
)

func queryPrompt(text string) string {
	return "Extract the main topic of the following text as a short search query of 3-6 words. " +
		"Remove noise. Return only the query itself.\n\n" +
		fmt.Sprintf("Text: %q\n\n", text) +
		"Search query:"
}

func summaryPrompt(query, sources string) string {
	return "You are an assistant analysing search results.\n" +
		"Task:\n" +
		"1. Read the page texts and judge their relevance.\n" +
		"2. Write a structured answer based on the relevant sources.\n" +
		"3. Do not mention irrelevant sources.\n" +
		"4. Cite the sources you used as <a href='URL'>title</a>.\n" +
		"5. Format with HTML: <b>, <i>, <a href>.\n" +
		"6. Answer in the language of the query.\n\n" +
		fmt.Sprintf("<b>Query:</b> %s\n\n", html.EscapeString(query)) +
		fmt.Sprintf("<b>Sources:</b>\n%s\n\n", sources) +
		"Answer:"
}

func directPrompt(query string) string {
	return "You are an information assistant. Give an accurate answer. " +
		"Use <a href='URL'>links</a> to authoritative sources.\n\n" +
		fmt.Sprintf("Query: %q", query)
}

// buildSources formats results whose page text was fetched; pages that failed are skipped
func buildSources(results []models.SearchResult, texts []string, excerpt int) string {
	parts := make([]string, 0, len(results))
	for i, r := range results {
		if i >= len(texts) || texts[i] == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf(
			"<b>Source %d:</b> <a href='%s'>%s</a>\n<i>Snippet:</i> %s\n<b>Text:</b>\n%s...\n",
			i+1,
			r.Link,
			html.EscapeString(r.Title),
			html.EscapeString(r.Snippet),
			html.EscapeString(truncate(texts[i], excerpt)),
		))
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
