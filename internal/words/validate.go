package words

import (
	"context"
	"fmt"
	"io"
)

// Report summarises a word list for the "words check" command.
type Report struct {
	Source     string
	Accepted   int
	Duplicates int
	Rejected   []Rejection
}

// OK reports whether the list can be used to play.
func (r Report) OK() bool {
	return r.Accepted > 0
}

// Validate reads src and reports what a game would accept from it.
func Validate(ctx context.Context, src Source) (Report, error) {
	result, err := read(ctx, src)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Source:     src.Name(),
		Accepted:   len(result.Words),
		Duplicates: result.Duplicates,
		Rejected:   result.Rejected,
	}, nil
}

// Write prints the report in a human readable form.
func (r Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Source:     %s\nAccepted:   %d\nDuplicates: %d\nRejected:   %d\n",
		r.Source, r.Accepted, r.Duplicates, len(r.Rejected)); err != nil {
		return err
	}
	for _, rej := range r.Rejected {
		if _, err := fmt.Fprintf(w, "  line %d: %q %s\n", rej.Line, rej.Text, rej.Reason); err != nil {
			return err
		}
	}
	return nil
}
