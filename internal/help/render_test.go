package help_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/akedrou/textdiff"
	. "github.com/onsi/gomega"

	"github.com/toejough/argtable/internal/flags"
	"github.com/toejough/argtable/internal/help"
)

func TestRenderAlignsHeaders(t *testing.T) {
	t.Parallel()

	schema := flags.MustSchema("",
		flags.Descriptor{Long: "count", Short: "-c", Help: "Number of items"},
		flags.Descriptor{Long: "output_file", Help: "Where to write"},
	)

	expectRender(t, 40, schema, ""+
		"\n--count, -c   Number of items\n"+
		"\n--output-file Where to write\n")
}

func TestRenderWrapsUnderTextColumn(t *testing.T) {
	t.Parallel()

	schema := flags.MustSchema("",
		flags.Descriptor{Long: "count", Short: "-c", Help: "alpha beta gamma delta"},
	)

	expectRender(t, 20, schema, ""+
		"\n--count, -c alpha\n"+
		"            beta\n"+
		"            gamma\n"+
		"            delta\n")
}

func TestRenderFullWidthLineHasNoNewline(t *testing.T) {
	t.Parallel()

	schema := flags.MustSchema("",
		flags.Descriptor{Long: "count", Short: "-c", Help: "abcdefgh ij"},
	)

	expectRender(t, 20, schema, "\n--count, -c abcdefgh            ij\n")
}

func TestRenderSplitsOverlongWord(t *testing.T) {
	t.Parallel()

	schema := flags.MustSchema("",
		flags.Descriptor{Long: "count", Short: "-c", Help: "abcdefghijk"},
	)

	expectRender(t, 20, schema, "\n--count, -c abcdefgh            ijk\n")
}

func TestRenderKeepsExplicitNewlines(t *testing.T) {
	t.Parallel()

	schema := flags.MustSchema("",
		flags.Descriptor{Long: "mode", Help: "One of:\nfast\nslow"},
	)

	expectRender(t, 80, schema, ""+
		"\n--mode One of:\n"+
		"       fast\n"+
		"       slow\n")
}

func TestRenderUnboundedWidthDoesNotWrap(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 40) + "end"
	schema := flags.MustSchema("", flags.Descriptor{Long: "x", Help: long})

	expectRender(t, 0, schema, "\n--x "+long+"\n")
}

func TestRenderDescriptionBeforeEntries(t *testing.T) {
	t.Parallel()

	schema := flags.MustSchema("Usage: demo [options] files",
		flags.Descriptor{Long: "verbose", Short: "-v", Help: "Talk more"},
	)

	expectRender(t, 20, schema, ""+
		"Usage: demo\n"+
		"[options] files\n"+
		"\n--verbose, -v Talk\n"+
		"              more\n")
}

func TestRenderEmptyHelpEndsLine(t *testing.T) {
	t.Parallel()

	schema := flags.MustSchema("",
		flags.Descriptor{Long: "quiet"},
		flags.Descriptor{Long: "loud", Help: "Shout"},
	)

	expectRender(t, 80, schema, "\n--quiet\n\n--loud  Shout\n")
}

func TestRenderSubstitutesDefaultText(t *testing.T) {
	t.Parallel()

	schema := flags.MustSchema("",
		flags.Descriptor{Long: "lines", Short: "-n", Help: "Lines to show (default %s)", DefaultText: "10"},
	)

	expectRender(t, 80, schema, "\n--lines, -n Lines to show (default 10)\n")
}

func TestRenderNarrowTerminalStillProgresses(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	schema := flags.MustSchema("", flags.Descriptor{Long: "a_very_long_name", Help: "ab cd"})
	r := help.Renderer{Width: 5, Styles: help.PlainStyles()}

	var out strings.Builder
	g.Expect(r.Render(&out, schema)).To(Succeed())
	g.Expect(out.String()).To(ContainSubstring("--a-very-long-name a"))
}

func TestRenderStyledHeaderKeepsAlignment(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	schema := flags.MustSchema("",
		flags.Descriptor{Long: "count", Short: "-c", Help: "Number"},
		flags.Descriptor{Long: "output_file", Help: "Where"},
	)
	r := help.Renderer{Width: 80, Styles: help.DefaultStyles()}

	var out strings.Builder
	g.Expect(r.Render(&out, schema)).To(Succeed())
	g.Expect(help.StripANSI(out.String())).To(Equal(
		"\n--count, -c   Number\n\n--output-file Where\n"))
}

func TestRenderReportsWriteError(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	schema := flags.MustSchema("", flags.Descriptor{Long: "x", Help: "y"})
	r := help.Renderer{Width: 80, Styles: help.PlainStyles()}

	g.Expect(r.Render(failingWriter{}, schema)).To(MatchError(errWrite))
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func expectRender(t *testing.T, width int, schema *flags.Schema, want string) {
	t.Helper()

	r := help.Renderer{Width: width, Styles: help.PlainStyles()}

	var out strings.Builder

	err := r.Render(&out, schema)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got := out.String(); got != want {
		t.Errorf("help output mismatch:\n%s", textdiff.Unified("want", "got", want, got))
	}
}
