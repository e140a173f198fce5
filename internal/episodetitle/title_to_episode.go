package episodetitle

import (
	"titlekit/internal/match"
	"titlekit/internal/rules"
)

// titleToEpisodeTitle relabels title spans that immediately follow an episode
// number. When a name carries several title spans, the one after the episode
// number is the episode's own title, not the series'.
type titleToEpisodeTitle struct{}

// TitleToEpisodeTitle constructs the rule.
func TitleToEpisodeTitle() rules.Rule { return titleToEpisodeTitle{} }

func (titleToEpisodeTitle) ID() string { return IDTitleToEpisodeTitle }

func (titleToEpisodeTitle) DependsOn() []string {
	return []string{IDFilepart3EpisodeTitle, IDFilepart2EpisodeTitle}
}

func (titleToEpisodeTitle) Apply(c *match.Collection) rules.Outcome {
	titles := c.Named(match.TagTitle)
	if len(titles) < 2 {
		return rules.Skipped("fewer_than_two_titles")
	}

	var promote []*match.Match
	for _, t := range titles {
		if c.Previous(t, match.TagEquals(match.TagEpisodeNumber)) != nil {
			promote = append(promote, t)
		}
	}
	if len(promote) == 0 {
		return rules.Skipped("no_title_after_episode_number")
	}

	affected := make([]*match.Match, 0, len(promote))
	for _, t := range promote {
		affected = append(affected, c.Relabel(t, match.TagEpisodeTitle))
	}
	return rules.AppliedTo("title_follows_episode_number", affected...)
}
