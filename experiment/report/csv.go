package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/npillmayer/ordtrees/experiment"
)

// File names used by WriteCSVFiles.
const (
	InsertFile = "insert_cost.csv"
	RemoveFile = "remove_cost.csv"
)

// WriteCSV writes one cost series of res as CSV: a header "size,<engine>…"
// followed by one row per sample.
func WriteCSV(w io.Writer, res *experiment.Results, kind experiment.Kind) error {
	cw := csv.NewWriter(w)
	header := append([]string{"size"}, res.Engines...)
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for i, size := range res.Sizes {
		row[0] = strconv.Itoa(size)
		for j, name := range res.Engines {
			row[j+1] = strconv.FormatInt(res.Series(kind, name)[i], 10)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFiles writes insertion and removal costs into dir, using the file
// names InsertFile and RemoveFile. dir is created if it does not exist.
func WriteCSVFiles(dir string, res *experiment.Results) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		kind experiment.Kind
	}{
		{InsertFile, experiment.Insertion},
		{RemoveFile, experiment.Removal},
	} {
		if err := writeFile(filepath.Join(dir, f.name), func(w io.Writer) error {
			return WriteCSV(w, res, f.kind)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err = write(out); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	tracer().Infof("report: wrote %s", path)
	return nil
}
