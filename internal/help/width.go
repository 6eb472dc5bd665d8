package help

import (
	"github.com/joeshaw/envdecode"
)

// DefaultWidth is used when the environment gives no width hint.
const DefaultWidth = 80

// TerminalWidth returns the terminal width from the COLUMNS variable.
// It is DefaultWidth when COLUMNS is unset, and 0, meaning unbounded, when
// COLUMNS does not start with a positive number.
func TerminalWidth() int {
	var cfg widthConfig

	err := envdecode.Decode(&cfg)
	if err != nil {
		return DefaultWidth
	}

	return int(cfg.Columns)
}

// columns decodes like C's atoi: optional leading blanks and sign, then
// digits up to the first non-digit. Anything unusable is 0.
type columns int

func (c *columns) Decode(repl string) error {
	*c = columns(max(atoi(repl), 0))
	return nil
}

type widthConfig struct {
	Columns columns `env:"COLUMNS,default=80"`
}

func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	sign := 1

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}

		i++
	}

	n := 0

	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > 1<<20 { // wider than any terminal
			return sign * n
		}
	}

	return sign * n
}
