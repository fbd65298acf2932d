package cli

import (
	"sort"
	"strings"

	tsize "github.com/kopoli/go-terminal-size"
	"github.com/olekukonko/tablewriter"

	"github.com/fileman-cli/fileman/internal/errors"
)

// Up never fails; at a filesystem root it leaves the cursor where it is.
func (s Service) Up(args []string) error {
	s.cursor.Up()
	return nil
}

func (s Service) ChangeDirectory(args []string) error {
	if len(args) < 1 {
		return errors.New("cd requires a path")
	}

	return s.cursor.Enter(args[0])
}

// List prints the entries of the current directory as a Name/Type table,
// directories and files interleaved, sorted case-insensitively by name.
func (s Service) List(args []string) error {
	entries, err := s.FileSystem.ReadDir(s.cursor.Location())
	if err != nil {
		return err
	}

	records := make([][]string, 0, len(entries))
	for _, entry := range entries {
		kind := "file"
		if entry.IsDir() {
			kind = "directory"
		}
		records = append(records, []string{entry.Name(), kind})
	}

	sort.Slice(records, func(i, j int) bool {
		return strings.ToLower(records[i][0]) < strings.ToLower(records[j][0])
	})

	table := tablewriter.NewWriter(s.Stdout)
	table.SetHeader([]string{"Name", "Type"})
	if size, err := tsize.GetSize(); err == nil {
		table.SetColWidth(size.Width / 2)
	}
	table.AppendBulk(records)
	table.Render()

	return nil
}
