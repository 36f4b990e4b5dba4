// Package pitest detects compiler-generated try-with-resources cleanup
// blocks in JVM bytecode read from javap listings.
//
// The javac and ECJ compilers expand try-with-resources statements into
// hidden close-and-rethrow sequences. Mutation tooling that alters
// those sequences produces failures no source change can explain, so it
// needs to know which source lines they land on. Scan parses a
// javap -c -l listing, replays each method through a fresh tracker, and
// reports the flagged lines per class and method.
package pitest

import (
	"context"
	"strings"
	"time"

	"github.com/Pfoerd/pitest/bytecode"
	"github.com/Pfoerd/pitest/history"
	"github.com/Pfoerd/pitest/listing"
	"github.com/Pfoerd/pitest/report"
	"github.com/Pfoerd/pitest/synthetic"
)

// Option configures a scan.
type Option func(*options)

type options struct {
	filename string
	history  history.Store
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithFilename sets the filename recorded in the report and used in
// parse error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithHistory supplies a store of previous scan results. A method whose
// fingerprint matches its stored entry reuses the stored lines instead
// of being scanned again; every other method is scanned and the store
// is updated.
func WithHistory(store history.Store) Option {
	return func(o *options) {
		o.history = store
	}
}

// ScanMethod runs the detector over a single method and returns the
// flagged source lines in ascending order. Each call uses a fresh
// tracker, so methods never share partial state.
func ScanMethod(method *bytecode.Method) []int {
	lines := synthetic.NewLineSet()
	method.Accept(synthetic.NewTryWithResources(lines))
	return lines.Lines()
}

// ScanClasses runs the detector over already-parsed classes and
// collects the findings into a report. One fresh tracker is used per
// method.
func ScanClasses(ctx context.Context, classes []*bytecode.Class, opts ...Option) (*report.Report, error) {
	o := collectOptions(opts...)
	rep, err := report.New(o.filename)
	if err != nil {
		return nil, err
	}
	for _, class := range classes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		classReport := report.ClassReport{
			Name:       class.Name(),
			SourceFile: class.SourceFile(),
		}
		for i := 0; i < class.MethodCount(); i++ {
			method := class.MethodAt(i)
			lines, err := o.methodLines(ctx, method)
			if err != nil {
				return nil, err
			}
			rep.ScannedMethods++
			if len(lines) == 0 {
				continue
			}
			classReport.Methods = append(classReport.Methods, report.MethodReport{
				Name:        method.Name(),
				Descriptor:  method.Descriptor(),
				Fingerprint: method.Fingerprint(),
				Lines:       lines,
			})
		}
		rep.ScannedClasses++
		if len(classReport.Methods) > 0 {
			rep.Classes = append(rep.Classes, classReport)
		}
	}
	return rep, nil
}

// methodLines consults the history store when one is configured.
func (o *options) methodLines(ctx context.Context, method *bytecode.Method) ([]int, error) {
	if o.history == nil {
		return ScanMethod(method), nil
	}
	fingerprint := method.Fingerprint()
	entry, ok, err := o.history.Get(ctx, method.FullName(), fingerprint)
	if err != nil {
		return nil, err
	}
	if ok {
		return entry.Lines, nil
	}
	lines := ScanMethod(method)
	err = o.history.Put(ctx, history.Entry{
		FullName:    method.FullName(),
		Fingerprint: fingerprint,
		Lines:       lines,
		ScannedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// Scan parses a javap listing and scans every method it contains. It is
// equivalent to listing.Parse followed by ScanClasses.
func Scan(ctx context.Context, source string, opts ...Option) (*report.Report, error) {
	o := collectOptions(opts...)
	var parserOpts []listing.Option
	if o.filename != "" {
		parserOpts = append(parserOpts, listing.WithFilename(o.filename))
	}
	classes, err := listing.Parse(ctx, strings.NewReader(source), parserOpts...)
	if err != nil {
		return nil, err
	}
	return ScanClasses(ctx, classes, opts...)
}
