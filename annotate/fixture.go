package annotate

import (
	"context"
	"errors"
	"fmt"

	"github.com/fractalqb/tokcmp"
)

var ErrNoFixture = errors.New("no fixture")

// Fixture is a deterministic annotator that looks texts up verbatim. It is
// meant for tests that must not depend on a language model.
type Fixture struct {
	Tags   map[string]tokcmp.Sequence
	Parses map[string]*tokcmp.Parse
}

func (f *Fixture) Tag(ctx context.Context, text string) (tokcmp.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seq, ok := f.Tags[text]
	if !ok {
		return nil, fmt.Errorf("tag %q: %w", text, ErrNoFixture)
	}
	return seq, nil
}

// Parse returns an empty parse for texts without parse fixture.
func (f *Fixture) Parse(ctx context.Context, text string) (*tokcmp.Parse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p, ok := f.Parses[text]; ok {
		return p, nil
	}
	return new(tokcmp.Parse), nil
}
