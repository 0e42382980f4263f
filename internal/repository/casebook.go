package repo

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"detective_quest/internal/domain/mansion"
	errs "detective_quest/internal/errors"
)

//go:embed casebooks/*.yaml
var embeddedCasebooks embed.FS

const casebookDir = "casebooks"

type casebookDocument struct {
	Title    string                `yaml:"title"`
	Mansion  *roomDocument         `yaml:"mansion"`
	Suspects []mansion.Association `yaml:"suspects"`
}

type roomDocument struct {
	Name  string        `yaml:"name"`
	Clue  string        `yaml:"clue"`
	Left  *roomDocument `yaml:"left"`
	Right *roomDocument `yaml:"right"`
}

// CasebookStorage reads the read-only game material shipped with the binary.
type CasebookStorage struct {
	fsys fs.FS
}

func NewCasebookStorage() *CasebookStorage {
	return &CasebookStorage{fsys: embeddedCasebooks}
}

// NewCasebookStorageFS reads casebooks from fsys, laid out as
// casebooks/<name>.yaml.
func NewCasebookStorageFS(fsys fs.FS) *CasebookStorage {
	return &CasebookStorage{fsys: fsys}
}

func (c *CasebookStorage) Names() ([]string, error) {
	entries, err := fs.ReadDir(c.fsys, casebookDir)
	if err != nil {
		return nil, fmt.Errorf("list casebooks: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

func (c *CasebookStorage) Load(name string) (*mansion.Casebook, error) {
	data, err := fs.ReadFile(c.fsys, path.Join(casebookDir, name+".yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errs.ErrCasebookNotFound, name)
		}
		return nil, fmt.Errorf("read casebook %s: %w", name, err)
	}

	var doc casebookDocument
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrInvalidCasebook, name, err)
	}
	return convertCasebook(name, doc)
}

func convertCasebook(name string, doc casebookDocument) (*mansion.Casebook, error) {
	if doc.Mansion == nil {
		return nil, fmt.Errorf("%w: %s: no entrance room", errs.ErrInvalidCasebook, name)
	}
	root, err := buildRoom(doc.Mansion)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrInvalidCasebook, name, err)
	}
	for i, a := range doc.Suspects {
		if a.Clue == "" || a.Suspect == "" {
			return nil, fmt.Errorf("%w: %s: association #%d is incomplete", errs.ErrInvalidCasebook, name, i+1)
		}
	}

	return &mansion.Casebook{
		Name:         name,
		Title:        doc.Title,
		Root:         root,
		Associations: doc.Suspects,
	}, nil
}

func buildRoom(doc *roomDocument) (*mansion.Room, error) {
	if doc == nil {
		return nil, nil
	}
	if doc.Name == "" {
		return nil, errors.New("room without a name")
	}
	room := mansion.NewRoom(doc.Name, doc.Clue)

	var err error
	if room.Left, err = buildRoom(doc.Left); err != nil {
		return nil, err
	}
	if room.Right, err = buildRoom(doc.Right); err != nil {
		return nil, err
	}
	return room, nil
}
