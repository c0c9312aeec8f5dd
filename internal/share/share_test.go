package share

import (
	"net/url"
	"strings"
	"testing"
)

func TestEscapeComponent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a b", "a%20b"},
		{"wow!", "wow!"},
		{"(it's)*", "(it's)*"},
		{"a+b", "a%2Bb"},
		{"?&=/", "%3F%26%3D%2F"},
		{"👇", "%F0%9F%91%87"},
		{"-_.~", "-_.~"},
	}
	for _, tt := range tests {
		if got := EscapeComponent(tt.in); got != tt.want {
			t.Errorf("EscapeComponent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComposeURL(t *testing.T) {
	got := ComposeURL(42, "https://example.com/play?x=1")

	want := "https://warpcast.com/~/compose?text=I%20just%20scored%2042%20in%20Flappy%20Gargoyle!%20Can%20you%20beat%20me%3F%20Play%20now%20on%20Soneium%20%F0%9F%91%87" +
		"&embeds[]=https%3A%2F%2Fexample.com%2Fplay%3Fx%3D1"
	if got != want {
		t.Errorf("ComposeURL() =\n%s\nwant\n%s", got, want)
	}
}

func TestComposeURLRoundTrip(t *testing.T) {
	raw := ComposeURL(7, "")
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	q := u.Query()
	if q.Get("text") != Text(7) {
		t.Errorf("text = %q, want %q", q.Get("text"), Text(7))
	}
	if q.Get("embeds[]") != DefaultEmbedURL {
		t.Errorf("embed = %q, want %q", q.Get("embeds[]"), DefaultEmbedURL)
	}
	if !strings.HasPrefix(raw, ComposeBase+"?") {
		t.Errorf("url %q should start with the composer", raw)
	}
}
