package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// Chamber selects the period columns Stack adds.
type Chamber string

const (
	House  Chamber = "house"
	Senate Chamber = "senate"
)

// registrationWindow is the House window name of registration downloads,
// which carry no reporting window column.
const registrationWindow = "Registrations"

// Period is what a flattened file's name says about its download:
// <year>_<window>_<contents>.csv.
type Period struct {
	Year     string
	Window   string
	Contents string
}

// ParsePeriod splits a flattened file name into its period parts.
func ParsePeriod(path string) (Period, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.SplitN(stem, "_", 3)
	if len(parts) != 3 {
		return Period{}, fmt.Errorf("file name %s is not <year>_<window>_<contents>", base)
	}
	return Period{Year: parts[0], Window: parts[1], Contents: parts[2]}, nil
}

// columns returns the period columns prepended to every row of a file.
func (p Period) columns(chamber Chamber) ([]string, []string) {
	if chamber == Senate {
		return []string{"file_year", "file_quarter"}, []string{p.Year, p.Window}
	}
	if p.Window == registrationWindow {
		return []string{"file_year"}, []string{p.Year}
	}
	return []string{"file_year", "file_reporting_window"}, []string{p.Year, p.Window}
}

type frame struct {
	header []string
	rows   [][]string
}

// Stack concatenates flattened CSV files into w. Period columns from each
// file name are prepended, headers are unioned in first-seen order, and
// cells a file has no column for are left empty.
func Stack(chamber Chamber, paths []string, w io.Writer) error {
	if chamber != House && chamber != Senate {
		return fmt.Errorf("unknown chamber %q", chamber)
	}

	frames := make([]frame, 0, len(paths))
	var header []string
	for _, path := range paths {
		f, err := readFrame(chamber, path)
		if err != nil {
			return err
		}
		frames = append(frames, f)
		header = lo.Union(header, f.header)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}

	out := csv.NewWriter(w)
	if err := out.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, f := range frames {
		for _, row := range f.rows {
			cells := make([]string, len(header))
			for i, v := range row {
				if i < len(f.header) {
					cells[index[f.header[i]]] = v
				}
			}
			if err := out.Write(cells); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
	}
	out.Flush()
	return out.Error()
}

func readFrame(chamber Chamber, path string) (frame, error) {
	period, err := ParsePeriod(path)
	if err != nil {
		return frame{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return frame{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return frame{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(all) == 0 {
		return frame{}, fmt.Errorf("%s has no header row", path)
	}

	names, values := period.columns(chamber)
	f := frame{header: append(append([]string{}, names...), all[0]...)}
	for _, row := range all[1:] {
		f.rows = append(f.rows, append(append([]string{}, values...), row...))
	}
	return f, nil
}
