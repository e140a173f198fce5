package episodetitle

import (
	"titlekit/internal/match"
	"titlekit/internal/rules"
	"titlekit/internal/textutil"
)

// alternativeTitleReplace promotes an alternative title to episode title when
// it chains, through a contiguous tagged run, back to a main title that sits
// in episode context. "Show - S01E02 - Alt Name" keeps "Alt Name" as the
// episode title once the chain back to "Show" checks out.
type alternativeTitleReplace struct{}

// AlternativeTitleReplace constructs the rule.
func AlternativeTitleReplace() rules.Rule { return alternativeTitleReplace{} }

func (alternativeTitleReplace) ID() string { return IDAlternativeTitleReplace }

func (alternativeTitleReplace) DependsOn() []string {
	return []string{IDEpisodeTitleFromPosition}
}

func (alternativeTitleReplace) Apply(c *match.Collection) rules.Outcome {
	if len(c.Named(match.TagEpisodeTitle)) > 0 {
		return rules.Skipped("episode_title_exists")
	}

	alt := c.First(match.TagEquals(match.TagAlternativeTitle))
	if alt == nil {
		return rules.Skipped("no_alternative_title")
	}

	mainTitle := c.ChainBefore(alt.Start, textutil.Seps, match.MarkerTag(match.MarkerTitle))
	if mainTitle == nil {
		return rules.Skipped("no_chained_main_title")
	}
	if !anchored(c, mainTitle) {
		return rules.Skipped("main_title_not_anchored")
	}

	renamed := c.Relabel(alt, match.TagEpisodeTitle)
	return rules.AppliedTo("alternative_title_promoted", renamed)
}
