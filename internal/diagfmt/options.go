package diagfmt

// PrettyOpts controls the human-oriented renderer.
type PrettyOpts struct {
	// Color enables ANSI colors. Callers decide from the --color flag
	// and tty detection; the renderer never probes the terminal itself.
	Color bool

	// MaxCols is the column limit the length rule ran with; the caret
	// for a long line points at the first character past this limit.
	MaxCols int
}
