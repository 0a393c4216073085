package migrations

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed *.up.sql
var files embed.FS

type Migration struct {
	Name string
	SQL  string
}

// Up returns the up migrations in file name order.
func Up() ([]Migration, error) {
	names, err := fs.Glob(files, "*.up.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	result := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := files.ReadFile(name)
		if err != nil {
			return nil, err
		}
		result = append(result, Migration{Name: name, SQL: string(content)})
	}

	return result, nil
}
