// Package listing parses javap disassembly output into bytecode values.
//
// The parser understands the output of javap -c -l, and tolerates the
// extra attributes that javap -v and -p add: class headers, method
// headers, Code sections, and LineNumberTable attributes are consumed,
// while exception tables, local variable tables, stack map frames, and
// jump table rows are skipped. Line number entries are merged into each
// method's record stream so that a line marker precedes the first
// instruction of its line, which is the order scanning depends on.
//
// Parsing is tolerant. Problems are collected as [ParseError] values
// and returned together after the whole listing has been read, so one
// malformed line does not hide the rest of the file.
package listing

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Pfoerd/pitest/bytecode"
	"github.com/hashicorp/go-multierror"
)

// Parse reads a javap listing and returns the classes it contains. This
// is a shorthand way to create a Parser and call Parse on that.
func Parse(ctx context.Context, r io.Reader, options ...Option) ([]*bytecode.Class, error) {
	return New(r, options...).Parse(ctx)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithFilename sets the file name used in error messages.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// section identifies which part of a method body is being read.
type section uint8

const (
	sectionNone section = iota
	sectionCode
	sectionLines
	sectionSwitch
	sectionSkip
)

// lineEntry is one LineNumberTable row.
type lineEntry struct {
	line   int
	offset int
}

// Parser transforms a javap listing into bytecode classes.
type Parser struct {
	scanner  *bufio.Scanner
	filename string

	lineNo  int
	errs    []*ParseError
	classes []*bytecode.Class

	// current class state
	inClass    bool
	className  string
	sourceFile string
	methods    []*bytecode.Method

	// current method state
	inMethod   bool
	methodName string
	descriptor string
	section    section
	insns      []bytecode.Record
	lineTable  []lineEntry
}

// New creates a Parser that reads the listing from r.
func New(r io.Reader, options ...Option) *Parser {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	p := &Parser{scanner: scanner}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Parse consumes the whole listing and returns the parsed classes along
// with any aggregated parse errors.
func (p *Parser) Parse(ctx context.Context) ([]*bytecode.Class, error) {
	for p.scanner.Scan() {
		if p.lineNo%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		p.lineNo++
		p.handleLine(strings.TrimSpace(p.scanner.Text()))
	}
	if err := p.scanner.Err(); err != nil {
		return nil, err
	}
	p.finishMethod()
	p.finishClass()

	var result *multierror.Error
	for _, e := range p.errs {
		result = multierror.Append(result, e)
	}
	return p.classes, result.ErrorOrNil()
}

// handleLine dispatches a single trimmed listing line.
func (p *Parser) handleLine(line string) {
	// Jump tables print their rows on the lines after the instruction.
	// Consume them here so the closing brace is not mistaken for the
	// end of the class.
	if p.section == sectionSwitch {
		if line == "}" {
			p.section = sectionCode
		}
		return
	}

	switch {
	case line == "":
		p.section = sectionNone
	case strings.HasPrefix(line, "Compiled from "):
		p.finishMethod()
		p.finishClass()
		p.sourceFile = unquote(strings.TrimPrefix(line, "Compiled from "))
	case line == "}":
		p.finishMethod()
		p.finishClass()
	case line == "Code:":
		p.section = sectionCode
	case strings.HasPrefix(line, "LineNumberTable:"):
		p.section = sectionLines
	case strings.HasPrefix(line, "Exception table:"),
		strings.HasPrefix(line, "LocalVariableTable:"),
		strings.HasPrefix(line, "LocalVariableTypeTable:"),
		strings.HasPrefix(line, "StackMapTable:"):
		p.section = sectionSkip
	case p.section == sectionCode:
		p.handleCodeLine(line)
	case p.section == sectionLines && strings.HasPrefix(line, "line "):
		p.handleLineEntry(line)
	case strings.HasPrefix(line, "descriptor:"):
		p.descriptor = strings.TrimSpace(strings.TrimPrefix(line, "descriptor:"))
	case strings.HasSuffix(line, "{"):
		p.startClass(line)
	case line == "static {};":
		if p.inClass {
			p.startMethod("<clinit>")
		}
	case strings.HasSuffix(line, ";") && strings.Contains(line, "("):
		p.startMethodHeader(line)
	default:
		// javap -v prints the class header without the brace, with the
		// brace on its own line after the class attributes.
		if name, ok := classHeaderName(line); ok {
			p.openClass(name)
		}
		// Everything else: field declarations, flags, verbose
		// attributes, and rows of skipped tables.
	}
}

// startClass begins a new class from a header line such as
//
//	public class com.example.Widget {
func (p *Parser) startClass(header string) {
	name, ok := classHeaderName(header)
	if !ok {
		// A lone brace follows a verbose header already handled above.
		if strings.TrimSuffix(header, "{") != "" {
			p.errorf(header, "malformed class header")
		}
		return
	}
	p.openClass(name)
}

func (p *Parser) openClass(name string) {
	p.finishMethod()
	p.finishClass()
	p.inClass = true
	p.className = name
}

// classModifiers lists the tokens that may precede the class, interface,
// enum, or record keyword in a declaration header.
var classModifiers = map[string]bool{
	"public":     true,
	"protected":  true,
	"private":    true,
	"abstract":   true,
	"final":      true,
	"static":     true,
	"strictfp":   true,
	"sealed":     true,
	"non-sealed": true,
}

// classHeaderName extracts the class name from a declaration header,
// which may or may not carry the opening brace.
func classHeaderName(header string) (string, bool) {
	header = strings.TrimSpace(strings.TrimSuffix(header, "{"))
	if strings.HasSuffix(header, ";") {
		return "", false
	}
	fields := strings.Fields(header)
	for i, f := range fields {
		if f != "class" && f != "interface" && f != "enum" && f != "record" {
			// Only declaration modifiers may appear before the keyword.
			// This keeps attribute rows that mention "class" mid-line,
			// such as InnerClasses entries, from starting a class.
			if !classModifiers[f] {
				return "", false
			}
			continue
		}
		if i+1 >= len(fields) {
			return "", false
		}
		name := fields[i+1]
		if j := strings.IndexByte(name, '<'); j >= 0 {
			name = name[:j]
		}
		return name, true
	}
	return "", false
}

// finishClass appends the class being built, if any, to the results.
func (p *Parser) finishClass() {
	if !p.inClass {
		return
	}
	p.classes = append(p.classes, bytecode.NewClass(bytecode.ClassParams{
		Name:       p.className,
		SourceFile: p.sourceFile,
		Methods:    p.methods,
	}))
	p.inClass = false
	p.className = ""
	p.sourceFile = ""
	p.methods = nil
}

// startMethodHeader begins a new method from a header such as
//
//	public int first(java.lang.String) throws java.lang.Exception;
//
// Constructors print under the class name and are renamed to <init>.
func (p *Parser) startMethodHeader(header string) {
	if !p.inClass {
		p.errorf(header, "method outside class")
		return
	}
	before, _, _ := strings.Cut(header, "(")
	fields := strings.Fields(before)
	if len(fields) == 0 {
		p.errorf(header, "malformed method header")
		return
	}
	name := fields[len(fields)-1]
	if name == p.className {
		name = "<init>"
	}
	p.startMethod(name)
}

func (p *Parser) startMethod(name string) {
	p.finishMethod()
	p.inMethod = true
	p.methodName = name
	// Forget descriptor rows seen outside a method, such as verbose
	// field attributes. The method's own descriptor row follows its
	// header.
	p.descriptor = ""
	p.section = sectionNone
}

// finishMethod appends the method being built, if any, to the current
// class.
func (p *Parser) finishMethod() {
	if !p.inMethod {
		return
	}
	p.methods = append(p.methods, bytecode.NewMethod(bytecode.MethodParams{
		ClassName:  p.className,
		Name:       p.methodName,
		Descriptor: p.descriptor,
		Records:    p.mergeRecords(),
	}))
	p.inMethod = false
	p.methodName = ""
	p.descriptor = ""
	p.section = sectionNone
	p.insns = nil
	p.lineTable = nil
}

// mergeRecords interleaves line number entries with the instruction
// stream so that each line marker precedes the first instruction of its
// line.
func (p *Parser) mergeRecords() []bytecode.Record {
	entries := make([]lineEntry, len(p.lineTable))
	copy(entries, p.lineTable)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].offset < entries[j].offset
	})
	records := make([]bytecode.Record, 0, len(p.insns)+len(entries))
	next := 0
	for _, insn := range p.insns {
		for next < len(entries) && entries[next].offset <= insn.Pos() {
			records = append(records, bytecode.LineNumber{
				Offset: entries[next].offset,
				Line:   entries[next].line,
			})
			next++
		}
		records = append(records, insn)
	}
	for ; next < len(entries); next++ {
		records = append(records, bytecode.LineNumber{
			Offset: entries[next].offset,
			Line:   entries[next].line,
		})
	}
	return records
}

// handleLineEntry parses one LineNumberTable row such as
//
//	line 7: 0
func (p *Parser) handleLineEntry(text string) {
	rest := strings.TrimPrefix(text, "line ")
	lineText, offsetText, ok := strings.Cut(rest, ":")
	if !ok {
		p.errorf(text, "malformed line number entry")
		return
	}
	lineNum, lineErr := strconv.Atoi(strings.TrimSpace(lineText))
	offset, offsetErr := strconv.Atoi(strings.TrimSpace(offsetText))
	if lineErr != nil || offsetErr != nil {
		p.errorf(text, "malformed line number entry")
		return
	}
	p.lineTable = append(p.lineTable, lineEntry{line: lineNum, offset: offset})
}

// errorf records a parse error at the current listing line and allows
// parsing to continue.
func (p *Parser) errorf(text, format string, args ...any) {
	p.errs = append(p.errs, NewParseError(ErrorOpts{
		Message: fmt.Sprintf(format, args...),
		File:    p.filename,
		Line:    p.lineNo,
		Text:    text,
	}))
}

// unquote strips one pair of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
