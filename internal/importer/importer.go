package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/VISHALVISHAL29/Dashboard/internal/model"
)

// ErrUnsupportedFormat is returned for files no parser handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Parser converts a spreadsheet file into one RawTable per sheet.
type Parser interface {
	Parse(r io.Reader) ([]model.RawTable, error)
	Format() string
}

// Registry holds parsers keyed by file format.
type Registry struct {
	parsers map[string]Parser
	aliases map[string]string
}

// FileInfo describes a spreadsheet found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{
		parsers: make(map[string]Parser),
		aliases: make(map[string]string),
	}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Alias makes format resolve to the parser registered for target.
func (r *Registry) Alias(format, target string) {
	r.aliases[strings.ToLower(format)] = strings.ToLower(target)
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	key := strings.ToLower(format)
	if target, ok := r.aliases[key]; ok {
		key = target
	}
	return r.parsers[key]
}

// ForFile returns the parser matching the file's extension.
func (r *Registry) ForFile(name string) (Parser, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if p := r.Get(ext); p != nil && ext != "" {
		return p, nil
	}
	return nil, fmt.Errorf("%s: %w", filepath.Base(name), ErrUnsupportedFormat)
}

// Supports reports whether some parser handles the file's extension.
func (r *Registry) Supports(name string) bool {
	_, err := r.ForFile(name)
	return err == nil
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&XLSXParser{})
	r.Register(&XLSParser{})
	r.Register(&CSVParser{})
	r.Alias("xlsm", "xlsx")
	return r
}

// Scan returns the spreadsheets in dir that reg can parse, in name order.
// Hidden files and Office lock files are skipped.
func Scan(dir string, reg *Registry) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading dir %s: %w", dir, err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || isJunkFile(e.Name()) || !reg.Supports(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

func isJunkFile(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~$")
}

// newTable builds a RawTable from sheet rows. The first non-empty row is the
// header; blank rows are dropped.
func newTable(name string, rows [][]string) model.RawTable {
	t := model.RawTable{Name: name}
	header := -1
	for i, row := range rows {
		if !blank(row) {
			header = i
			break
		}
	}
	if header < 0 {
		return t
	}

	t.Columns = trimAll(rows[header])
	for _, row := range rows[header+1:] {
		if blank(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
