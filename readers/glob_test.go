package readers_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/argtable/readers"
)

func TestGlob(t *testing.T) {
	t.Parallel()

	t.Run("BracesAndDoubleStar", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		dir := writeTree(t, "a.txt", "b.txt", "c.md", filepath.Join("dir", "d.txt"))

		got, err := readers.Glob([]string{
			filepath.Join(dir, "{a,b}.txt"),
			filepath.Join(dir, "**", "*.txt"),
		})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(got).To(Equal([]string{
			filepath.Join(dir, "a.txt"),
			filepath.Join(dir, "b.txt"),
			filepath.Join(dir, "dir", "d.txt"),
		}))
	})

	t.Run("DirectoriesAreSkipped", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		dir := writeTree(t, filepath.Join("sub", "x.go"))

		got, err := readers.Glob([]string{filepath.Join(dir, "*")})
		g.Expect(err).To(MatchError(readers.ErrNoMatches))
		g.Expect(got).To(BeNil())
	})

	t.Run("NoMatchIsError", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		dir := writeTree(t, "a.txt")

		_, err := readers.Glob([]string{filepath.Join(dir, "*.md")})
		g.Expect(err).To(MatchError(readers.ErrNoMatches))
	})
}

func writeTree(t *testing.T, files ...string) string {
	t.Helper()

	dir := t.TempDir()

	for _, name := range files {
		path := filepath.Join(dir, name)

		err := os.MkdirAll(filepath.Dir(path), 0o755)
		if err != nil {
			t.Fatalf("mkdir: %v", err)
		}

		err = os.WriteFile(path, []byte("x"), 0o644)
		if err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	return dir
}
