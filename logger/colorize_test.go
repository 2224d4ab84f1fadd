package logger

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type host struct{ name string }

func (h host) String() string { return "host:" + h.name }

var colorizers = []struct {
	name  string
	fn    func(any) string
	color Color
}{
	{"URL", URL, Blue},
	{"File", File, Blue},
	{"Dir", Dir, Blue},
	{"Time", Time, Green},
	{"Place", Place, Yellow},
	{"Val", Val, Cyan},
	{"Name", Name, Yellow},
}

func TestColorizerCodes(t *testing.T) {
	want := map[string]string{
		"URL":   "\x1b[34mx\x1b[0m",
		"File":  "\x1b[34mx\x1b[0m",
		"Dir":   "\x1b[34mx\x1b[0m",
		"Time":  "\x1b[32mx\x1b[0m",
		"Place": "\x1b[33mx\x1b[0m",
		"Val":   "\x1b[36mx\x1b[0m",
		"Name":  "\x1b[33mx\x1b[0m",
	}
	for _, c := range colorizers {
		assert.Equal(t, want[c.name], c.fn("x"), c.name)
		assert.Equal(t, Colored("x", c.color), c.fn("x"), c.name)
	}
}

func TestColorizerStripRoundTrip(t *testing.T) {
	values := []any{
		"",
		"/var/log/app.log",
		12345,
		3.5,
		true,
		nil,
		90 * time.Second,
		host{"db1"},
		fmt.Errorf("wrapped: %w", fmt.Errorf("inner")),
		[]int{1, 2},
		"\x1b[31malready red\x1b[0m",
	}
	for _, c := range colorizers {
		for _, v := range values {
			got := c.fn(v)
			require.Equal(t, Strip(fmt.Sprint(v)), Strip(got), "%s(%#v)", c.name, v)
		}
	}
}

func TestColorizerUsesStringer(t *testing.T) {
	assert.Equal(t, "host:db1", Strip(Name(host{"db1"})))
	assert.Equal(t, "1m30s", Strip(Time(90*time.Second)))
}
