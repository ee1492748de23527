package assistant

import (
	"fmt"
	"strings"

	"github.com/hearthlib/curator/internal/domain/catalog"
	"github.com/hearthlib/curator/internal/usecase/intent"
)

// fallbackContent writes a helpful reply from local search results when the
// provider is unreachable. The phrasing follows the detected intent so the
// degraded path still reads like the assistant.
func fallbackContent(userMsg string, in intent.Intent, results []catalog.Item) string {
	if len(results) == 0 {
		return "I'm having trouble reaching my main service, but I can still help! " +
			"Could you try rephrasing your question or being more specific about what you're looking for?"
	}

	var b strings.Builder

	switch in.Primary {
	case intent.Explore:
		fmt.Fprintf(&b, "I found some great materials related to %q:\n\n", userMsg)
	case intent.Learn:
		b.WriteString("Here are some learning resources for your journey:\n\n")
	case intent.Solve:
		b.WriteString("I found these helpful resources to solve your problem:\n\n")
	case intent.Enjoy:
		b.WriteString("Here are some entertaining options for you:\n\n")
	default:
		fmt.Fprintf(&b, "Based on your interest in %q, I recommend:\n\n", userMsg)
	}

	for _, it := range diverseSelection(results, 4) {
		b.WriteString(fallbackLine(it))
		b.WriteString("\n\n")
	}

	b.WriteString("Would you like more details about any of these items?")
	return b.String()
}

// diverseSelection mixes material types: up to two non-book items first, then
// books, capped at n. A pure top-N would be books almost every time.
func diverseSelection(results []catalog.Item, n int) []catalog.Item {
	var books, others []catalog.Item
	for _, it := range results {
		if it.Kind() == catalog.KindBook {
			books = append(books, it)
		} else {
			others = append(others, it)
		}
	}

	out := make([]catalog.Item, 0, n)
	for _, it := range others {
		if len(out) == 2 {
			break
		}
		out = append(out, it)
	}
	for _, it := range books {
		if len(out) == n {
			break
		}
		out = append(out, it)
	}
	return out
}

func fallbackLine(it catalog.Item) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s **%s**", kindLabel(it.Kind()), it.Title())
	if creator := it.Creator(); creator != "" {
		fmt.Fprintf(&b, " by %s", creator)
	}
	if desc := it.Description(); desc != "" {
		fmt.Fprintf(&b, " - %s", truncate(desc, 100))
	}
	if it.Available() {
		b.WriteString(" *Available now*")
	}

	return b.String()
}

func kindLabel(k catalog.Kind) string {
	switch k {
	case catalog.KindBook:
		return "[book]"
	case catalog.KindMedia:
		return "[media]"
	case catalog.KindGame:
		return "[game]"
	case catalog.KindEquipment, catalog.KindThing:
		return "[equipment]"
	case catalog.KindComic:
		return "[comic]"
	}
	return "[item]"
}
