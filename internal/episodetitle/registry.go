package episodetitle

import "titlekit/internal/rules"

// Rules returns the episode-title ensemble. Execution order comes from the
// dependency edges declared on each rule, not from this slice.
func Rules() []rules.Rule {
	return []rules.Rule{
		Filepart3EpisodeTitle(),
		Filepart2EpisodeTitle(),
		TitleToEpisodeTitle(),
		EpisodeTitleFromPosition(),
		AlternativeTitleReplace(),
	}
}
