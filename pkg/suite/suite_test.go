package suite_test

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/graph-guard/mrxhash/pkg/suite"

	"github.com/stretchr/testify/require"
)

func TestReadSuite(t *testing.T) {
	s, err := suite.ReadSuite(validFS(), ".")
	require.NoError(t, err)
	require.Equal(t, &suite.Suite{
		Name:      "small keys",
		Seed:      42,
		BatchSize: 512,
		ShapesEnabled: []*suite.Shape{
			{
				ID:   "counters",
				Name: "dense counters",
				Kind: suite.KindUint64,
				Keys: 100000,
			},
			{
				ID:   "sessions",
				Name: "session tokens",
				Kind: suite.KindBytes,
				Keys: 50000,
				Size: 16,
			},
		},
		ShapesDisabled: []*suite.Shape{
			{
				ID:   "words",
				Name: "words",
				Kind: suite.KindWords,
				Keys: 25000,
			},
		},
	}, s)
}

func TestReadSuiteDefaults(t *testing.T) {
	s, err := suite.ReadSuite(fstest.MapFS{
		"suite.yaml": &fstest.MapFile{
			Data: []byte(lines(`name: defaults only`)),
		},
	}, ".")
	require.NoError(t, err)
	require.Equal(t, &suite.Suite{
		Name:      "defaults only",
		Seed:      1,
		BatchSize: suite.DefaultBatchSize,
	}, s)
}

func TestReadSuiteErrorMissingSuiteFile(t *testing.T) {
	err := testError(t, fstest.MapFS{
		filepath.Join(
			suite.ShapesEnabledDir, "counters.yaml",
		): &fstest.MapFile{
			Data: []byte(lines(`kind: uint64`, `keys: 1`)),
		},
	})
	require.Equal(t, "missing suite.yaml", err.Error())
}

func TestReadSuiteErrorConflictingSuiteFiles(t *testing.T) {
	f := validFS()
	f["suite.yml"] = &fstest.MapFile{
		Data: []byte(lines(`name: duplicate`)),
	}
	err := testError(t, f)
	require.Equal(
		t, "conflict between: suite.yaml, suite.yml", err.Error(),
	)
}

func TestReadSuiteErrorMissingName(t *testing.T) {
	f := validFS()
	f["suite.yaml"] = &fstest.MapFile{
		Data: []byte(lines(`seed: 42`)),
	}
	err := testError(t, f)
	require.Equal(t, "missing name in suite.yaml", err.Error())
}

func TestReadSuiteErrorNegativeBatchSize(t *testing.T) {
	f := validFS()
	f["suite.yaml"] = &fstest.MapFile{
		Data: []byte(lines(`name: x`, `batch_size: -1`)),
	}
	err := testError(t, f)
	require.Equal(
		t, "illegal batch_size in suite.yaml: must be positive",
		err.Error(),
	)
}

func TestReadSuiteErrorUnknownField(t *testing.T) {
	f := validFS()
	f["suite.yaml"] = &fstest.MapFile{
		Data: []byte(lines(`name: x`, `bogus: true`)),
	}
	err := testError(t, f)
	var illegal *suite.ErrorIllegal
	require.ErrorAs(t, err, &illegal)
	require.Equal(t, "suite.yaml", illegal.FilePath)
	require.Contains(t, illegal.Message, "field bogus not found")
}

func TestReadSuiteErrorMissingKind(t *testing.T) {
	f := validFS()
	f[filepath.Join(suite.ShapesEnabledDir, "broken.yaml")] = &fstest.MapFile{
		Data: []byte(lines(`keys: 100`)),
	}
	err := testError(t, f)
	require.Equal(
		t, "missing kind in shapes_enabled/broken.yaml", err.Error(),
	)
}

func TestReadSuiteErrorUnsupportedKind(t *testing.T) {
	f := validFS()
	f[filepath.Join(suite.ShapesEnabledDir, "broken.yaml")] = &fstest.MapFile{
		Data: []byte(lines(`kind: trie`, `keys: 100`)),
	}
	err := testError(t, f)
	require.Equal(
		t, `illegal kind in shapes_enabled/broken.yaml: `+
			`unsupported kind "trie"`,
		err.Error(),
	)
}

func TestReadSuiteErrorMissingKeys(t *testing.T) {
	f := validFS()
	f[filepath.Join(suite.ShapesEnabledDir, "broken.yaml")] = &fstest.MapFile{
		Data: []byte(lines(`kind: uint64`)),
	}
	err := testError(t, f)
	require.Equal(
		t, "missing keys in shapes_enabled/broken.yaml", err.Error(),
	)
}

func TestReadSuiteErrorNegativeKeys(t *testing.T) {
	f := validFS()
	f[filepath.Join(suite.ShapesEnabledDir, "broken.yaml")] = &fstest.MapFile{
		Data: []byte(lines(`kind: uint64`, `keys: -5`)),
	}
	err := testError(t, f)
	require.Equal(
		t, "illegal keys in shapes_enabled/broken.yaml: "+
			"must be positive",
		err.Error(),
	)
}

func TestReadSuiteErrorMissingSize(t *testing.T) {
	f := validFS()
	f[filepath.Join(suite.ShapesEnabledDir, "broken.yaml")] = &fstest.MapFile{
		Data: []byte(lines(`kind: bytes`, `keys: 100`)),
	}
	err := testError(t, f)
	require.Equal(
		t, "missing size in shapes_enabled/broken.yaml", err.Error(),
	)
}

func TestReadSuiteErrorSizeOnNonBytes(t *testing.T) {
	f := validFS()
	f[filepath.Join(suite.ShapesEnabledDir, "broken.yaml")] = &fstest.MapFile{
		Data: []byte(lines(`kind: uint64`, `keys: 100`, `size: 8`)),
	}
	err := testError(t, f)
	require.Equal(
		t, "illegal size in shapes_enabled/broken.yaml: "+
			"applies to bytes shapes only",
		err.Error(),
	)
}

func TestReadSuiteErrorIllegalID(t *testing.T) {
	f := validFS()
	f[filepath.Join(suite.ShapesEnabledDir, "we$rd.yaml")] = &fstest.MapFile{
		Data: []byte(lines(`kind: uint64`, `keys: 100`)),
	}
	err := testError(t, f)
	require.Equal(
		t, "illegal id in shapes_enabled/we$rd.yaml: "+
			"contains illegal character at index 2",
		err.Error(),
	)
}

func TestReadSuiteErrorDuplicateShape(t *testing.T) {
	f := validFS()
	f[filepath.Join(suite.ShapesDisabledDir, "counters.yaml")] = &fstest.MapFile{
		Data: []byte(lines(`kind: uint64`, `keys: 1`)),
	}
	err := testError(t, f)
	require.Equal(
		t, "conflict between: shapes_enabled/counters, "+
			"shapes_disabled/counters",
		err.Error(),
	)
}

func TestReadSuiteErrorDuplicateShapeFile(t *testing.T) {
	f := validFS()
	f[filepath.Join(suite.ShapesEnabledDir, "counters.yml")] = &fstest.MapFile{
		Data: []byte(lines(`kind: uint64`, `keys: 1`)),
	}
	err := testError(t, f)
	require.Equal(
		t, "conflict between: shapes_enabled/counters.yaml, "+
			"shapes_enabled/counters.yml",
		err.Error(),
	)
}

func TestValidateID(t *testing.T) {
	require.Equal(t, "empty", suite.ValidateID(""))
	require.Equal(t, "", suite.ValidateID("shape_a-1"))
	require.Equal(
		t, "contains illegal character at index 5",
		suite.ValidateID("shape case"),
	)
}

func testError(t *testing.T, filesystem fstest.MapFS) error {
	t.Helper()
	s, err := suite.ReadSuite(filesystem, ".")
	require.Error(t, err)
	require.Nil(t, s)
	return err
}

func validFS() fstest.MapFS {
	return fstest.MapFS{
		"suite.yaml": &fstest.MapFile{
			Data: []byte(lines(
				`name: small keys`,
				`seed: 42`,
				`batch_size: 512`,
			)),
		},
		filepath.Join(
			suite.ShapesEnabledDir, "counters.yaml",
		): &fstest.MapFile{
			Data: []byte(lines(
				`name: dense counters`,
				`kind: uint64`,
				`keys: 100000`,
			)),
		},
		filepath.Join(
			suite.ShapesEnabledDir, "sessions.yaml",
		): &fstest.MapFile{
			Data: []byte(lines(
				`name: session tokens`,
				`kind: bytes`,
				`keys: 50000`,
				`size: 16`,
			)),
		},
		filepath.Join(
			suite.ShapesDisabledDir, "words.yaml",
		): &fstest.MapFile{
			Data: []byte(lines(
				`kind: words`,
				`keys: 25000`,
			)),
		},
	}
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}
