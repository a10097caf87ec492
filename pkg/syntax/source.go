package syntax

import "golang.org/x/exp/slices"

// frame is one source of characters: the main program, a built-in library
// or an imported file. chain holds the names of the sources that imported
// it, outermost first, ending with its own name.
type frame struct {
	name  string
	text  []rune
	pos   int
	line  int
	chain []string
}

// Input is a character stream with pushback. Text spliced in with Splice is
// read before whatever remained of the stream, which is how imports place a
// library's text ahead of the rest of the program.
type Input struct {
	frames  []*frame
	pending []rune
}

// NewInput returns an Input reading text, reported under name.
func NewInput(name, text string) *Input {
	in := &Input{}
	in.frames = append(in.frames, &frame{name: name, text: []rune(text), line: 1, chain: []string{name}})
	return in
}

// Next returns the next character, or false at the end of all input.
func (in *Input) Next() (rune, bool) {
	if n := len(in.pending); n > 0 {
		c := in.pending[n-1]
		in.pending = in.pending[:n-1]
		if c == '\n' {
			in.top().line++
		}
		return c, true
	}
	for len(in.frames) > 0 {
		f := in.top()
		if f.pos < len(f.text) {
			c := f.text[f.pos]
			f.pos++
			if c == '\n' {
				f.line++
			}
			return c, true
		}
		if len(in.frames) == 1 {
			break
		}
		in.frames = in.frames[:len(in.frames)-1]
	}
	return 0, false
}

// Unget pushes c back so the next call to Next returns it.
func (in *Input) Unget(c rune) {
	if c == '\n' {
		in.top().line--
	}
	in.pending = append(in.pending, c)
}

// Splice places text ahead of everything not yet read. The new source is
// imported by the one currently being read.
func (in *Input) Splice(name, text string) {
	cur := in.top()
	if len(in.pending) > 0 {
		rest := make([]rune, len(in.pending))
		for i, c := range in.pending {
			rest[len(rest)-1-i] = c
		}
		in.pending = nil
		in.frames = append(in.frames, &frame{name: cur.name, text: rest, line: cur.line, chain: cur.chain})
	}
	chain := append(slices.Clone(cur.chain), name)
	in.frames = append(in.frames, &frame{name: name, text: []rune(text), line: 1, chain: chain})
}

// Line is the current line in the source being read.
func (in *Input) Line() int {
	return in.top().line
}

// Name is the name of the source being read.
func (in *Input) Name() string {
	return in.top().name
}

// Importers lists the source being read and every source that imported it,
// outermost first. A source stays on this list after its text is used up.
func (in *Input) Importers() []string {
	return slices.Clone(in.top().chain)
}

func (in *Input) top() *frame {
	return in.frames[len(in.frames)-1]
}
