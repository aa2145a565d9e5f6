// Package places holds the static destination reference set and the
// autocomplete matcher that ranks cities against a partial name. The matcher
// state is owned by a single UI component and is not safe for concurrent use.
package places
