package core

// Match scans tokens from start, recording every argument it recognizes.
//
// The scan stops at the first token that names no argument; that token's
// index is returned in Next and is left for the caller, e.g. as a
// positional. A help token stops the scan with StatusHelp before anything
// after it is looked at. A flag without enough trailing values stops the
// scan with StatusError and Next pointing at the flag.
//
// Match may be called again on the same state to continue after tokens the
// caller consumed itself.
func (s *State) Match(tokens []string, start int) MatchResult {
	ctx := matchContext{state: s, tokens: tokens, pos: min(max(start, 0), len(tokens))}

	return ctx.scan()
}

type matchContext struct {
	state  *State
	tokens []string
	pos    int
}

// capture records the match of descriptor idx at the current position.
func (ctx *matchContext) capture(idx int) error {
	desc := ctx.state.schema.At(idx)
	rec := &ctx.state.records[idx]
	rec.Present = true

	first := ctx.pos + 1
	if first+desc.Arity > len(ctx.tokens) {
		return &ArgError{
			Kind:  ErrInsufficientValues,
			ID:    desc.Key(),
			Flag:  ctx.tokens[ctx.pos],
			Index: ctx.pos,
		}
	}

	rec.Raw = append([]string(nil), ctx.tokens[first:first+desc.Arity]...)
	ctx.pos = first + desc.Arity

	return nil
}

func (ctx *matchContext) scan() MatchResult {
	for ctx.pos < len(ctx.tokens) {
		token := ctx.tokens[ctx.pos]

		if ctx.state.schema.IsHelp(token) {
			return MatchResult{Status: StatusHelp, Next: ctx.pos}
		}

		idx, ok := ctx.state.schema.Find(token)
		if !ok {
			break
		}

		err := ctx.capture(idx)
		if err != nil {
			return MatchResult{Status: StatusError, Next: ctx.pos, Err: err}
		}
	}

	return MatchResult{Status: StatusOK, Next: ctx.pos}
}
