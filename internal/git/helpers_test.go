package git

import (
	"context"
	"strings"
)

// fakeRunner answers git invocations from a table keyed by the joined args
// and records every call.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []fakeCall
}

type fakeCall struct {
	dir  string
	args []string
}

func (f *fakeRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	f.calls = append(f.calls, fakeCall{dir: dir, args: append([]string(nil), args...)})
	key := strings.Join(args, " ")
	if err, ok := f.errs[key]; ok {
		return "", err
	}
	return f.outputs[key], nil
}

func (f *fakeRunner) commands() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, strings.Join(c.args, " "))
	}
	return out
}
