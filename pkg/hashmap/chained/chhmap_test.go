package chained

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/scottcagno/hashtable/pkg/hash"
	"github.com/scottcagno/hashtable/pkg/hashmap"
	"github.com/scottcagno/hashtable/pkg/logger"
	"github.com/stretchr/testify/require"
)

func collect[K comparable, V any](b *bucket[K, V]) []K {
	var keys []K
	b.scan(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func TestNewHashMap(t *testing.T) {
	hm, err := NewHashMap[string, []byte](nil)
	require.NoError(t, err)
	require.Equal(t, 0, hm.Len())
	require.True(t, hm.IsEmpty())
	hm.Put("0", nil)
	require.Equal(t, 1, hm.Len())
	for i := 1; i < 5; i++ {
		hm.Put(strconv.Itoa(i), nil)
	}
	require.Equal(t, 5, hm.Len())
	require.Equal(t, 8, hm.Cap())

	_, err = NewHashMap[string, []byte](&hashmap.Config{StartCapacity: 12})
	require.True(t, errors.Is(err, hashmap.ErrCapacityNotPowerOfTwo), "%v", err)
}

func Test_bucket_insert(t *testing.T) {
	b := new(bucket[string, []byte])
	val, ok := b.insert(1, "1", []byte("1"))
	require.False(t, ok)
	require.Nil(t, val)

	b.insert(2, "2", []byte("2"))
	b.insert(3, "3", []byte("3"))
	require.Equal(t, []string{"1", "2", "3"}, collect(b))

	val, ok = b.insert(2, "2", []byte("two"))
	require.True(t, ok)
	require.Equal(t, []byte("2"), val)
	require.Equal(t, []string{"1", "2", "3"}, collect(b))
}

func Test_bucket_delete(t *testing.T) {
	b := new(bucket[string, []byte])
	for i := 1; i <= 5; i++ {
		s := strconv.Itoa(i)
		b.insert(uint64(i), s, []byte(s))
	}
	require.Len(t, collect(b), 5)

	// head, middle, tail
	for _, s := range []string{"1", "3", "5"} {
		i, _ := strconv.Atoi(s)
		val, ok := b.delete(uint64(i), s)
		require.True(t, ok)
		require.Equal(t, []byte(s), val)
	}
	require.Equal(t, []string{"2", "4"}, collect(b))

	// the tail must follow deletes so appends land at the end
	b.insert(6, "6", []byte("6"))
	require.Equal(t, []string{"2", "4", "6"}, collect(b))

	_, ok := b.delete(7, "7")
	require.False(t, ok)

	b.delete(2, "2")
	b.delete(4, "4")
	b.delete(6, "6")
	require.Nil(t, b.head)
	require.Nil(t, b.tail)
	_, ok = b.delete(2, "2")
	require.False(t, ok)
}

func Test_bucket_scan(t *testing.T) {
	b := new(bucket[string, int])
	for i := 0; i < 5; i++ {
		b.insert(uint64(i), strconv.Itoa(i), i)
	}
	var count int
	completed := b.scan(func(key string, val int) bool {
		count++
		return val < 2
	})
	require.False(t, completed)
	require.Equal(t, 3, count)
}

func TestHashMapScenario(t *testing.T) {
	m, err := NewIntHashMap[int, string](nil)
	require.NoError(t, err)
	for i, v := range []string{"one", "two", "three", "four", "five"} {
		m.Put(i+1, v)
	}
	m.Put(5, "six")
	val, ok := m.Get(5)
	require.True(t, ok)
	require.Equal(t, "six", val)
	require.Equal(t, 5, m.Len())

	m.Remove(1)
	m.Remove(3)
	m.Remove(42)
	require.Equal(t, 3, m.Len())
	require.False(t, m.Has(1))
	require.False(t, m.Has(3))
	val, ok = m.Get(2)
	require.True(t, ok)
	require.Equal(t, "two", val)
	require.Equal(t, "Hash table: [ __ __ two __ four six __ __ ]", m.String())
}

func TestGrowthPreservesMappings(t *testing.T) {
	m, err := NewHashMapWithHasher[string, int](nil, hash.String())
	require.NoError(t, err)
	for i := 0; i < 2048; i++ {
		m.Put(fmt.Sprintf("key-%d", i), i)
	}
	require.Equal(t, 2048, m.Len())
	require.Equal(t, 4096, m.Cap())
	for i := 0; i < 2048; i++ {
		val, ok := m.Get(fmt.Sprintf("key-%d", i))
		require.True(t, ok)
		require.Equal(t, i, val)
	}
	var count int
	m.Range(func(string, int) bool {
		count++
		return true
	})
	require.Equal(t, 2048, count)
}

func TestHashMap_PercentFull(t *testing.T) {
	m, err := NewIntHashMap[int, int](nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		m.Put(i, i)
	}
	require.Equal(t, 0.625, m.PercentFull())
}

func TestGrowthIsLogged(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewLoggerWithOutput(&buf, logger.LevelDebug)
	lg.SetFlags(0)
	lg.SetColor(false)
	m, err := NewIntHashMap[int, int](&hashmap.Config{Logger: lg})
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		m.Put(i, i)
	}
	require.Equal(t, "| DBUG | chained: grew from 8 to 16 buckets (5 keys)\n", buf.String())
}

func TestMatchesBuiltinMap(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("chained matches a builtin map", prop.ForAll(
		func(ops []int) bool {
			m, err := NewIntHashMap[int, int](nil)
			if err != nil {
				return false
			}
			model := make(map[int]int)
			for i, op := range ops {
				key := op >> 1
				if op&1 == 1 {
					m.Remove(key)
					delete(model, key)
				} else {
					m.Put(key, i)
					model[key] = i
				}
			}
			if m.Len() != len(model) || m.Len() >= m.Cap() {
				return false
			}
			for k, v := range model {
				if got, ok := m.Get(k); !ok || got != v {
					return false
				}
			}
			return len(m.Render()) >= m.Len()
		},
		gen.SliceOf(gen.IntRange(0, 127)),
	))

	properties.TestingRun(t)
}

func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var m *HashMap[int, string]
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			if d.Cmd != "new" && m == nil {
				d.Fatalf(t, "no table, use new first")
			}
			switch d.Cmd {
			case "new":
				var capacity int
				d.ScanArgs(t, "capacity", &capacity)
				var err error
				m, err = NewIntHashMap[int, string](&hashmap.Config{StartCapacity: uint(capacity)})
				require.NoError(t, err)
				return m.String()
			case "put":
				var out strings.Builder
				for _, line := range strings.Split(d.Input, "\n") {
					fields := strings.Fields(line)
					if len(fields) != 2 {
						d.Fatalf(t, "expected <key> <value>, got %q", line)
					}
					key, err := strconv.Atoi(fields[0])
					require.NoError(t, err)
					if old, ok := m.Set(key, fields[1]); ok {
						fmt.Fprintf(&out, "%d: updated (was %s)\n", key, old)
					} else {
						fmt.Fprintf(&out, "%d: inserted\n", key)
					}
				}
				return out.String()
			case "get":
				var key int
				d.ScanArgs(t, "key", &key)
				if val, ok := m.Get(key); ok {
					return val
				}
				return "not found"
			case "remove":
				var key int
				d.ScanArgs(t, "key", &key)
				if val, ok := m.Del(key); ok {
					return "removed " + val
				}
				return "not found"
			case "size":
				return fmt.Sprintf("len=%d cap=%d", m.Len(), m.Cap())
			case "render":
				return m.String()
			default:
				d.Fatalf(t, "unknown command %q", d.Cmd)
				return ""
			}
		})
	})
}
