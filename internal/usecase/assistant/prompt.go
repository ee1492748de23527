package assistant

import (
	"fmt"
	"strings"

	"github.com/hearthlib/curator/internal/domain/catalog"
	"github.com/hearthlib/curator/internal/usecase/intent"
)

// systemPrompt builds the provider system prompt: assistant persona, the
// shortlisted catalog summary, and grounding rules. Only shortlisted items go
// into the prompt; the full catalog would blow the context window.
func systemPrompt(items []catalog.Item, in intent.Intent) string {
	var b strings.Builder

	b.WriteString("You are a friendly, knowledgeable library assistant. ")
	b.WriteString("Patrons describe what they want in plain language and you recommend materials.\n\n")

	b.WriteString("Rules:\n")
	b.WriteString("- Only recommend items from the catalog excerpt below. Never invent titles.\n")
	b.WriteString("- Refer to items by their exact title, in double quotes.\n")
	b.WriteString("- Mention the creator and availability when relevant.\n")
	b.WriteString("- Keep replies short and conversational.\n\n")

	fmt.Fprintf(&b, "The patron's goal appears to be: %s.\n\n", in.Primary)

	b.WriteString("Catalog excerpt:\n")
	for _, it := range items {
		b.WriteString(itemSummary(it))
		b.WriteByte('\n')
	}

	return b.String()
}

// itemSummary renders one catalog item as a single prompt line.
func itemSummary(it catalog.Item) string {
	var b strings.Builder

	fmt.Fprintf(&b, "- %q (%s)", it.Title(), it.Kind())
	if creator := it.Creator(); creator != "" {
		fmt.Fprintf(&b, " by %s", creator)
	}
	if subjects := it.Subjects(); len(subjects) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(subjects, ", "))
	}
	if desc := it.Description(); desc != "" {
		fmt.Fprintf(&b, ": %s", truncate(desc, 120))
	}
	if it.Available() {
		b.WriteString(" (available)")
	} else {
		b.WriteString(" (all copies out)")
	}

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n]) + "..."
}
