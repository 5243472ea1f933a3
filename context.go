package incpeg

// Running state of pattern matching.
type context struct {
	config  Config
	grammar *Grammar
	memo    memoTable

	// Text and cursor.
	text string
	pos  int

	// Highest position read by the current rule application, -1 if none.
	maxExamined int

	// Nested rule applications.
	levels int
}

// Memoization discipline of rule applications.
type memoTable interface {
	// recall reuses the memoized outcome of rule at ctx.pos, moving the
	// cursor past it on success. found is false if nothing is memoized.
	recall(ctx *context, rule string) (node Node, ok bool, found bool)

	// memoize stores the outcome of rule applied at start, ctx.pos being
	// the position the application ended at.
	memoize(ctx *context, start int, rule string, node Node, ok bool)
}

func newContext(config Config, g *Grammar, memo memoTable, text string) *context {
	ctx := &context{}
	ctx.reset(config, g, memo, text)
	return ctx
}

func (ctx *context) reset(config Config, g *Grammar, memo memoTable, text string) {
	ctx.config = config
	ctx.grammar = g
	ctx.memo = memo

	ctx.text = text
	ctx.pos = 0
	ctx.maxExamined = -1
	ctx.levels = 0
}

// Applies the entry rule, and tells the consumed length.
func (ctx *context) match() (Node, int, error) {
	if ctx.grammar == nil {
		return nil, 0, errorNilGrammar
	}
	node, ok, err := V(StartRule).eval(ctx)
	if err != nil || !ok {
		return nil, 0, err
	}
	return node, ctx.pos, nil
}

// Consumes a single byte, or leaves the cursor unmoved if c is not at the
// cursor. The probed position is examined whether it matched or not.
func (ctx *context) consume(c byte) bool {
	if ctx.pos > ctx.maxExamined {
		ctx.maxExamined = ctx.pos
	}
	if ctx.pos < len(ctx.text) && ctx.text[ctx.pos] == c {
		ctx.pos++
		return true
	}
	return false
}

// Folds the reach of an examined span into the running reach.
func (ctx *context) examined(upto int) {
	if upto > ctx.maxExamined {
		ctx.maxExamined = upto
	}
}

// Applies the named rule at the cursor, reusing the memo table.
func (ctx *context) apply(name string) (Node, bool, error) {
	if node, ok, found := ctx.memo.recall(ctx, name); found {
		return node, ok, nil
	}

	body, defined := ctx.grammar.Rule(name)
	if !defined {
		return nil, false, &UndefinedRuleError{Name: name}
	}
	if ctx.config.CallstackLimit > 0 &&
		ctx.levels >= ctx.config.CallstackLimit {
		return nil, false, ErrCallstackOverflow
	}

	// measure the examined reach relative to this application
	start := ctx.pos
	outer := ctx.maxExamined
	ctx.maxExamined = -1
	ctx.levels++
	node, ok, err := body.eval(ctx)
	ctx.levels--
	if err != nil {
		return nil, false, err
	}

	ctx.memo.memoize(ctx, start, name, node, ok)
	ctx.examined(outer)
	return node, ok, nil
}

// Tests if the repetition counter reached repeat limit.
func (ctx *context) reachedRepeatLimit(i int) bool {
	return ctx.config.RepeatLimit > 0 && i >= ctx.config.RepeatLimit
}
