// Package episodetitle decides which tagged span of a media file name is the
// episode title.
//
// The upstream extractor has already tagged candidate spans (titles, episode
// numbers, seasons, dates, checksums) and delimited the path segments; this
// package resolves the remaining ambiguity using only relative position, path
// depth, and the presence of neighboring tags. Five rules cooperate:
//
//   - Filepart3EpisodeTitle / Filepart2EpisodeTitle infer a missing series
//     title from an ancestor path segment when the layout looks like
//     "Series/Season/Episode" or "Series Season/Episode".
//   - TitleToEpisodeTitle relabels title spans that immediately follow an
//     episode number.
//   - EpisodeTitleFromPosition carves an episode title out of an unmatched
//     gap anchored to episode context, when no episode title exists yet.
//   - AlternativeTitleReplace promotes an alternative title chained to an
//     anchored main title.
//
// The filepart rules run before the promotion chain since they only ever add
// title spans the chain consumes; the chain order is TitleToEpisodeTitle,
// EpisodeTitleFromPosition, AlternativeTitleReplace. These edges are declared
// on the rules themselves and resolved by the rule graph.
//
// Every rule degrades to a no-op on inapplicable input and is idempotent on
// its own output.
package episodetitle
