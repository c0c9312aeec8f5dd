// Package share builds social share links for a finished run.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

// ComposeBase is the Warpcast cast composer.
const ComposeBase = "https://warpcast.com/~/compose"

// DefaultEmbedURL is linked from casts when the host has no public URL.
const DefaultEmbedURL = "https://flappy-gargoyle.app"

// Text returns the cast text for a score.
func Text(score int) string {
	return fmt.Sprintf("I just scored %d in Flappy Gargoyle! Can you beat me? Play now on Soneium 👇", score)
}

// componentUnescaper undoes the QueryEscape choices that differ from a URI
// component encoding, so links match what browsers produce.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent percent-encodes s as a URI component.
func EscapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// ComposeURL returns a Warpcast compose link announcing score with embedURL
// attached. An empty embedURL uses DefaultEmbedURL.
func ComposeURL(score int, embedURL string) string {
	if embedURL == "" {
		embedURL = DefaultEmbedURL
	}
	return ComposeBase + "?text=" + EscapeComponent(Text(score)) + "&embeds[]=" + EscapeComponent(embedURL)
}
