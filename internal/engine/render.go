package engine

import (
	"fmt"
	"strings"

	"caddie/internal/places"
	"caddie/internal/retail"
)

const maxStores = 10

func renderHunt(location string, cfg retail.Config, curated []retail.CuratedStore, ranked []places.Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Bourbon allocation hunting in %s**\n\n", location)
	fmt.Fprintf(&b, "%s\n", cfg.GuidanceText)
	if cfg.StateWebsite != "" {
		fmt.Fprintf(&b, "\n**State website:** %s\n", cfg.StateWebsite)
	}

	if len(curated) > 0 {
		b.WriteString("\n**Known allocation stores:**\n")
		for i, s := range curated {
			fmt.Fprintf(&b, "%d. **%s** (%s)\n   %s\n   %s\n", i+1, s.Name, s.AllocationType, s.Address, s.Notes)
		}
	}

	if len(ranked) > 0 {
		b.WriteString("\n**Stores to check:**\n")
		for i, s := range ranked {
			fmt.Fprintf(&b, "%d. **%s**\n   %s\n", i+1, s.Name, s.Address)
		}
	} else if len(curated) == 0 {
		b.WriteString("\nNo specific stores found in search results. Try a nearby larger city.\n")
	}
	return b.String()
}

func renderCigar(location string, ranked []places.Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Cigar shops near %s**\n\n", location)
	if len(ranked) == 0 {
		b.WriteString("No cigar retailers found nearby. Try a nearby larger city.\n")
		return b.String()
	}
	for i, s := range ranked {
		fmt.Fprintf(&b, "%d. **%s**\n   %s\n", i+1, s.Name, s.Address)
	}
	return b.String()
}
