// Package suite loads benchmark workload suites from a directory.
//
// A suite directory holds a suite.yaml file describing the run and
// one YAML file per key shape under the shape directories:
//
//	suite.yaml
//	shapes_enabled/
//	    counters.yaml
//	    sessions.yaml
//	shapes_disabled/
//	    words.yaml
package suite

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

const SuiteFile1 = "suite.yaml"
const SuiteFile2 = "suite.yml"
const ShapesEnabledDir = "shapes_enabled"
const ShapesDisabledDir = "shapes_disabled"

// DefaultBatchSize is the number of keys hashed between measurements
// when suite.yaml doesn't set batch_size.
const DefaultBatchSize = 4096

// Kind selects how the keys of a shape are generated.
type Kind string

const (
	// KindUint64 generates pseudo-random 64 bit integer keys.
	KindUint64 Kind = "uint64"
	// KindBytes generates pseudo-random byte string keys
	// of a fixed size.
	KindBytes Kind = "bytes"
	// KindWords draws keys from the embedded word corpus.
	KindWords Kind = "words"
)

type Suite struct {
	Name string
	// Seed initializes the key generators. A suite.yaml without a
	// seed (or with seed 0) uses seed 1 so runs stay reproducible.
	Seed           uint64
	BatchSize      int
	ShapesEnabled  []*Shape
	ShapesDisabled []*Shape
}

type Shape struct {
	ID   string
	Name string
	Kind Kind
	Keys int
	// Size is the key size in bytes, set for KindBytes only.
	Size int
}

func ReadSuite(filesystem fs.FS, dirPath string) (*Suite, error) {
	d, err := fs.ReadDir(filesystem, dirPath)
	if err != nil {
		return nil, fmt.Errorf("reading suite directory: %w", err)
	}

	var shapesEnabledDir bool
	var shapesDisabledDir bool
	var suiteFile bool

	s := &Suite{}

	for _, o := range d {
		n := o.Name()
		if o.IsDir() {
			switch n {
			case ShapesEnabledDir:
				shapesEnabledDir = true
			case ShapesDisabledDir:
				shapesDisabledDir = true
			}
			continue
		} else if n == SuiteFile1 || n == SuiteFile2 {
			if suiteFile {
				return nil, &ErrorConflict{Items: []string{
					SuiteFile1,
					SuiteFile2,
				}}
			}
			suiteFile = true

			p := filepath.Join(dirPath, n)
			var c suiteConfig
			if err := decodeFile(filesystem, p, &c); err != nil {
				return nil, err
			}
			if c.Name == "" {
				return nil, &ErrorMissing{
					FilePath: p,
					Feature:  "name",
				}
			}
			if c.BatchSize < 0 {
				return nil, &ErrorIllegal{
					FilePath: p,
					Feature:  "batch_size",
					Message:  "must be positive",
				}
			}
			s.Name = c.Name
			s.Seed = c.Seed
			s.BatchSize = c.BatchSize
			if s.Seed == 0 {
				s.Seed = 1
			}
			if s.BatchSize == 0 {
				s.BatchSize = DefaultBatchSize
			}
		}
	}

	if !suiteFile {
		return nil, &ErrorMissing{
			FilePath: filepath.Join(dirPath, SuiteFile1),
		}
	}

	if shapesEnabledDir {
		sh, err := readShapesDir(
			filesystem, filepath.Join(dirPath, ShapesEnabledDir),
		)
		if err != nil {
			return nil, err
		}
		s.ShapesEnabled = sh
	}

	if shapesDisabledDir {
		sh, err := readShapesDir(
			filesystem, filepath.Join(dirPath, ShapesDisabledDir),
		)
		if err != nil {
			return nil, err
		}
		s.ShapesDisabled = sh
	}

	if d := duplicate(
		s.ShapesEnabled,
		s.ShapesDisabled,
		func(a, b *Shape) bool { return a.ID == b.ID },
	); d != nil {
		return nil, &ErrorConflict{Items: []string{
			filepath.Join(ShapesEnabledDir, d.ID),
			filepath.Join(ShapesDisabledDir, d.ID),
		}}
	}

	return s, nil
}

func readShapesDir(filesystem fs.FS, path string) ([]*Shape, error) {
	d, err := fs.ReadDir(filesystem, path)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	var shapes []*Shape
	seen := map[string]string{}
	for _, o := range d {
		if o.IsDir() {
			// Ignore directories
			continue
		}
		n := o.Name()
		if ext := filepath.Ext(n); ext != ".yaml" && ext != ".yml" {
			// Ignore non-YAML files
			continue
		}
		sh, err := readShapeFile(filesystem, filepath.Join(path, n))
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[sh.ID]; ok {
			return nil, &ErrorConflict{Items: []string{
				filepath.Join(path, prev),
				filepath.Join(path, n),
			}}
		}
		seen[sh.ID] = n
		shapes = append(shapes, sh)
	}
	return shapes, nil
}

func readShapeFile(filesystem fs.FS, path string) (*Shape, error) {
	n := filepath.Base(path)
	id := n[:len(n)-len(filepath.Ext(n))]
	if err := ValidateID(id); err != "" {
		return nil, &ErrorIllegal{
			FilePath: path,
			Feature:  "id",
			Message:  err,
		}
	}
	id = strings.ToLower(id)

	var c shapeConfig
	if err := decodeFile(filesystem, path, &c); err != nil {
		return nil, err
	}

	switch Kind(c.Kind) {
	case KindUint64, KindBytes, KindWords:
	case "":
		return nil, &ErrorMissing{
			FilePath: path,
			Feature:  "kind",
		}
	default:
		return nil, &ErrorIllegal{
			FilePath: path,
			Feature:  "kind",
			Message:  fmt.Sprintf("unsupported kind %q", c.Kind),
		}
	}

	if c.Keys == 0 {
		return nil, &ErrorMissing{
			FilePath: path,
			Feature:  "keys",
		}
	}
	if c.Keys < 0 {
		return nil, &ErrorIllegal{
			FilePath: path,
			Feature:  "keys",
			Message:  "must be positive",
		}
	}

	if Kind(c.Kind) == KindBytes {
		if c.Size == 0 {
			return nil, &ErrorMissing{
				FilePath: path,
				Feature:  "size",
			}
		}
		if c.Size < 0 {
			return nil, &ErrorIllegal{
				FilePath: path,
				Feature:  "size",
				Message:  "must be positive",
			}
		}
	} else if c.Size != 0 {
		return nil, &ErrorIllegal{
			FilePath: path,
			Feature:  "size",
			Message:  "applies to bytes shapes only",
		}
	}

	name := c.Name
	if name == "" {
		name = id
	}
	return &Shape{
		ID:   id,
		Name: name,
		Kind: Kind(c.Kind),
		Keys: c.Keys,
		Size: c.Size,
	}, nil
}

type suiteConfig struct {
	Name      string `yaml:"name"`
	Seed      uint64 `yaml:"seed"`
	BatchSize int    `yaml:"batch_size"`
}

type shapeConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Keys int    `yaml:"keys"`
	Size int    `yaml:"size"`
}

func decodeFile(filesystem fs.FS, path string, target any) error {
	b, err := fs.ReadFile(filesystem, path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}
	d := yaml.NewDecoder(bytes.NewReader(b))
	d.KnownFields(true)
	if err := d.Decode(target); err != nil {
		return &ErrorIllegal{
			FilePath: path,
			Message:  err.Error(),
		}
	}
	return nil
}

func ValidateID(n string) (err string) {
	if n == "" {
		return "empty"
	}
	for i := range n {
		if strings.IndexByte(IDValidCharDict, n[i]) < 0 {
			return fmt.Sprintf("contains illegal character at index %d", i)
		}
	}
	return ""
}

const IDValidCharDict = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"_-"

func duplicate[T any](a, b []T, isEqual func(a, b T) bool) (d T) {
	for i := range a {
		for i2 := range b {
			if isEqual(a[i], b[i2]) {
				return a[i]
			}
		}
	}
	return
}

type ErrorConflict struct {
	Items []string
}

func (e ErrorConflict) Error() string {
	var b strings.Builder
	b.WriteString("conflict between: ")
	for i := range e.Items {
		b.WriteString(e.Items[i])
		if i+1 < len(e.Items) {
			b.WriteString(", ")
		}
	}
	return b.String()
}

type ErrorMissing struct {
	FilePath string
	Feature  string
}

func (e ErrorMissing) Error() string {
	var b strings.Builder
	if e.Feature == "" {
		b.Grow(len("missing ") + len(e.FilePath))
		b.WriteString("missing ")
		b.WriteString(e.FilePath)
		return b.String()
	}
	b.Grow(len("missing ") + len(e.Feature) + len(" in ") + len(e.FilePath))
	b.WriteString("missing ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	return b.String()
}

type ErrorIllegal struct {
	FilePath string
	Feature  string
	Message  string
}

func (e ErrorIllegal) Error() string {
	var b strings.Builder
	if e.Feature == "" {
		b.Grow(len("illegal ") +
			len(e.FilePath) +
			len(": ") +
			len(e.Message))
		b.WriteString("illegal ")
		b.WriteString(e.FilePath)
		b.WriteString(": ")
		b.WriteString(e.Message)
		return b.String()
	}
	b.Grow(len("illegal ") +
		len(e.Feature) +
		len(" in ") +
		len(e.FilePath) +
		len(": ") +
		len(e.Message))
	b.WriteString("illegal ")
	b.WriteString(e.Feature)
	b.WriteString(" in ")
	b.WriteString(e.FilePath)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}
