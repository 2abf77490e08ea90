package sink

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	empty := NewText("")
	rules, err := empty.Rules()
	require.NoError(t, err)
	assert.Empty(t, rules)

	s := NewText("/* ssr */\n")
	require.NoError(t, s.Insert(".a {color:red;}"))
	require.NoError(t, s.Insert(".b {color:blue;}"))

	assert.Equal(t, "/* ssr */\n.a {color:red;}\n.b {color:blue;}\n", s.String())
	rules, err = s.Rules()
	require.NoError(t, err)
	assert.Equal(t, []string{s.String()}, rules)
}

func TestSheet(t *testing.T) {
	initial := []string{".a {color:red;}"}
	s := NewSheet(initial...)
	require.NoError(t, s.Insert(".b {color:blue;}"))

	initial[0] = "mutated"
	rules, err := s.Rules()
	require.NoError(t, err)
	assert.Equal(t, []string{".a {color:red;}", ".b {color:blue;}"}, rules)
	assert.Equal(t, ".a {color:red;}\n.b {color:blue;}", s.String())
	assert.Equal(t, 2, s.Len())

	rules[0] = "changed"
	again, _ := s.Rules()
	assert.Equal(t, ".a {color:red;}", again[0])
}

func TestSQLitePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.db")

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Insert(".a {color:red;}"))
	require.NoError(t, db.InsertAll([]string{"--uni {--uni:uni-1;}", ".uni-1 {margin:0;}"}))
	require.NoError(t, db.Close())

	db, err = OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rules, err := db.Rules()
	require.NoError(t, err)
	assert.Equal(t, []string{".a {color:red;}", "--uni {--uni:uni-1;}", ".uni-1 {margin:0;}"}, rules)
	assert.Equal(t, ".a {color:red;}\n--uni {--uni:uni-1;}\n.uni-1 {margin:0;}", db.String())
	assert.Equal(t, path, db.Path())
}

func TestSQLiteMemory(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rules, err := db.Rules()
	require.NoError(t, err)
	assert.Empty(t, rules)
}
