package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/yacobolo/unicss/internal/sink"
)

func newLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

func TestHash(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "uni-0"},
		{"a", "uni-97"},
		{"ab", "uni-3105"},
		{"hello world", "uni-1794106052"},
		{"é", "uni-233"},
		{"😀", "uni-1772899"},
		{".__uni__ {color:white;}", "uni-1534472887"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, Hash(tt.in))
		})
	}
}

func TestMarker(t *testing.T) {
	assert.Equal(t, "--uni {--uni:uni-97;}", Marker("uni-97"))
}

func TestScanMarkers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"bare", "--uni {--uni:uni-1;}", []string{"uni-1"}},
		{"single quoted", "--uni {--uni:'uni-2';}", []string{"uni-2"}},
		{"double quoted with spaces", `--uni { --uni : "uni-3" ; }`, []string{"uni-3"}},
		{
			name: "mixed with rules",
			in:   "--uni {--uni:uni-1;}\n.uni-1 {color:red;}\n--uni {--uni:uni-2;}\n.uni-2 {color:blue;}\n",
			want: []string{"uni-1", "uni-2"},
		},
		{"foreign prefix ignored", "--uni {--uni:abc;}", nil},
		{"no markers", ".a {color:red;}", nil},
		{"declaration in another rule", ".a{--uni: uni-5}", nil},
		{"bare declaration", "--uni:uni-6;", nil},
		{"comment before declaration", "--uni {/* x */--uni:uni-7;}", []string{"uni-7"}},
		{"other declaration first", "--uni {color:red;--uni:uni-8;}", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanMarkers(tt.in))
		})
	}
}

func TestInsertAtMostOnce(t *testing.T) {
	s := sink.NewSheet()
	c, err := New(s, newLogger(t))
	require.NoError(t, err)

	rules := []string{".__uni__ {color:white;}"}
	hash := Hash(rules[0])

	inserted, err := c.Insert(hash, rules)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = c.Insert(hash, rules)
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := s.Rules()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--uni {--uni:uni-1534472887;}",
		".uni-1534472887 {color:white;}",
	}, got)
	assert.True(t, c.Has(hash))
	assert.Equal(t, []string{hash}, c.Hashes())
	assert.Equal(t, 1, c.Len())
}

func TestHydrate(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		s := sink.NewText("--uni {--uni:'uni-1';}\n.uni-1 {color:red;}\n")
		c, err := New(s, newLogger(t))
		require.NoError(t, err)
		assert.Equal(t, []string{"uni-1"}, c.Hashes())

		inserted, err := c.Insert("uni-1", []string{".__uni__ {color:red;}"})
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Equal(t, "--uni {--uni:'uni-1';}\n.uni-1 {color:red;}\n", s.String())
	})

	t.Run("sheet", func(t *testing.T) {
		s := sink.NewSheet("--uni {--uni:uni-1;}", ".uni-1 {color:red;}", "--uni {--uni:uni-2;}")
		c, err := New(s, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"uni-1", "uni-2"}, c.Hashes())
	})

	t.Run("reused sink", func(t *testing.T) {
		s := sink.NewSheet()
		first, err := New(s, nil)
		require.NoError(t, err)
		_, err = first.Insert("uni-9", []string{".__uni__ {margin:0;}"})
		require.NoError(t, err)

		second, err := New(s, nil)
		require.NoError(t, err)
		assert.True(t, second.Has("uni-9"))
	})
}

func TestNilSinkUsesSheet(t *testing.T) {
	c, err := New(nil, nil)
	require.NoError(t, err)
	_, ok := c.Sink().(*sink.Sheet)
	assert.True(t, ok)
}

type failingSink struct {
	fail  bool
	rules []string
}

func (f *failingSink) Insert(rule string) error {
	if f.fail {
		return errors.New("disk full")
	}
	f.rules = append(f.rules, rule)
	return nil
}

func (f *failingSink) Rules() ([]string, error) {
	if f.fail {
		return nil, errors.New("unreadable")
	}
	return f.rules, nil
}

func TestFailedInsertIsRetried(t *testing.T) {
	s := &failingSink{}
	c, err := New(s, newLogger(t))
	require.NoError(t, err)

	s.fail = true
	inserted, err := c.Insert("uni-1", []string{".__uni__ {color:red;}"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.False(t, inserted)
	assert.False(t, c.Has("uni-1"))

	s.fail = false
	inserted, err = c.Insert("uni-1", []string{".__uni__ {color:red;}"})
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestUnreadableSink(t *testing.T) {
	c, err := New(&failingSink{fail: true}, nil)
	require.Error(t, err)
	require.NotNil(t, c)
	assert.Zero(t, c.Len())
}

func TestConcurrentInsert(t *testing.T) {
	s := sink.NewSheet()
	c, err := New(s, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Insert("uni-1", []string{".__uni__ {color:red;}"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, c.Len())
}
