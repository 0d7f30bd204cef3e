package mailer

import (
	"errors"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		in   error
		want error
	}{
		{errors.New("535 5.7.8 authentication credentials invalid"), ErrAuth},
		{errors.New("smtp auth failed"), ErrAuth},
		{errors.New("dial tcp: connection refused"), ErrConnect},
		{errors.New("dial tcp: lookup smtp.example.com: no such host"), ErrConnect},
		{errors.New("i/o timeout while reading"), ErrTimeout},
	}
	for _, c := range cases {
		if got := classify(c.in); !errors.Is(got, c.want) {
			t.Fatalf("classify(%v) = %v, want %v", c.in, got, c.want)
		}
	}

	other := errors.New("550 mailbox unavailable")
	if got := classify(other); got != other {
		t.Fatalf("expected unclassified error passed through, got %v", got)
	}
}

func TestRenderHTMLParagraphizes(t *testing.T) {
	m := New(Config{SenderName: "Combine Zenith", Domain: "combinezenith.com"}, nil)
	out := m.renderHTML("Your inquiry", "First paragraph.\n\nSecond <paragraph>.")
	if !strings.Contains(out, "First paragraph.") {
		t.Fatalf("missing first paragraph: %s", out)
	}
	if !strings.Contains(out, "Second &lt;paragraph&gt;.") {
		t.Fatalf("expected escaped markup, got: %s", out)
	}
	if !strings.Contains(out, "info@combinezenith.com") {
		t.Fatalf("missing footer contact: %s", out)
	}
}
