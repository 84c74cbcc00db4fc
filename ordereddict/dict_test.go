package ordereddict

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf[K comparable, V any](d *Dict[K, V]) []K {
	var keys []K
	d.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func buildDict(keys ...int) *Dict[int, string] {
	d := New[int, string]()
	for _, k := range keys {
		d.Add(k, "")
	}
	return d
}

func TestAddAndIterationOrder(t *testing.T) {
	d := buildDict(5, 3, 8, 1, 4, 7, 9)

	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, keysOf(d))
	assert.Equal(t, 7, d.Len())
	for _, k := range []int{1, 3, 4, 5, 7, 8, 9} {
		assert.True(t, d.Has(k), "Has(%d)", k)
	}
	assert.False(t, d.Has(2))
	assert.False(t, d.Has(6))
}

func TestAddExistingKeyKeepsValue(t *testing.T) {
	d := New[int, string]()
	d.Add(1, "first")
	d.Add(1, "second")

	v, err := d.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, d.Len())
}

func TestRemove(t *testing.T) {
	tcs := []struct {
		name   string
		insert []int
		remove int
		want   []int
	}{
		{"leaf", []int{5, 3, 8, 1, 4, 7, 9}, 1, []int{3, 4, 5, 7, 8, 9}},
		{"two children", []int{5, 3, 8, 1, 4, 7, 9}, 5, []int{1, 3, 4, 7, 8, 9}},
		{"left child only", []int{5, 3, 1}, 3, []int{1, 5}},
		{"right child only", []int{5, 3, 4}, 3, []int{4, 5}},
		{"root of single node", []int{5}, 5, nil},
		{"root with two children", []int{5, 3, 8}, 5, []int{3, 8}},
		{"absent key", []int{5, 3, 8}, 6, []int{3, 5, 8}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			d := buildDict(tc.insert...)
			d.Remove(tc.remove)

			assert.Equal(t, tc.want, keysOf(d))
			assert.False(t, d.Has(tc.remove))
			assert.Equal(t, len(tc.want), d.Len())
		})
	}
}

func TestRemoveTwiceIsNoop(t *testing.T) {
	d := buildDict(5, 3, 8)
	d.Remove(3)
	d.Remove(3)

	assert.Equal(t, []int{5, 8}, keysOf(d))
	assert.Equal(t, 2, d.Len())
}

func TestRemoveInteriorKeepsValues(t *testing.T) {
	d := New[int, string]()
	d.Add(5, "five")
	d.Add(3, "three")
	d.Add(8, "eight")
	d.Add(4, "four")

	// 5 has two children; 4 donates its key and value upward.
	d.Remove(5)

	assert.Equal(t, []int{3, 4, 8}, keysOf(d))
	for k, want := range map[int]string{3: "three", 4: "four", 8: "eight"} {
		v, err := d.Get(k)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestGetOrInsertCreatesMissingKey(t *testing.T) {
	d := New[string, int]()

	require.False(t, d.Has("counter"))
	p := d.GetOrInsert("counter")
	assert.True(t, d.Has("counter"))
	assert.Equal(t, 0, *p)

	*p++
	*d.GetOrInsert("counter")++

	v, err := d.Get("counter")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, d.Len())
}

func TestGetAbsentKey(t *testing.T) {
	d := buildDict(5, 3, 8)

	_, err := d.Get(4)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// The failed lookup must not have inserted anything.
	assert.False(t, d.Has(4))
	assert.Equal(t, []int{3, 5, 8}, keysOf(d))
}

func TestFind(t *testing.T) {
	d := New[int, string]()
	d.Add(1, "one")

	p, ok := d.Find(1)
	require.True(t, ok)
	assert.Equal(t, "one", *p)

	*p = "uno"
	v, err := d.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "uno", v)

	_, ok = d.Find(2)
	assert.False(t, ok)
	assert.False(t, d.Has(2))
}

func TestCloneIsIndependent(t *testing.T) {
	d := New[int, string]()
	d.Add(5, "five")
	d.Add(3, "three")
	d.Add(8, "eight")

	c := d.Clone()
	c.Remove(3)
	c.Add(10, "ten")
	*c.GetOrInsert(5) = "FIVE"

	assert.Equal(t, []int{3, 5, 8}, keysOf(d))
	v, err := d.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "five", v)

	assert.Equal(t, []int{5, 8, 10}, keysOf(c))
}

func TestCloneEmpty(t *testing.T) {
	d := New[int, string]()
	c := d.Clone()

	assert.Equal(t, 0, c.Len())
	c.Add(1, "one")
	assert.Equal(t, []int{1}, keysOf(c))
	assert.Equal(t, 0, d.Len())
}

func TestMoveTransfersOwnership(t *testing.T) {
	d := buildDict(5, 3, 8)
	m := d.Move()

	assert.Equal(t, []int{3, 5, 8}, keysOf(m))
	assert.Equal(t, 3, m.Len())

	// The source is empty but still usable.
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, d.End(), d.Begin())
	d.Add(1, "")
	assert.Equal(t, []int{1}, keysOf(d))
	assert.Equal(t, []int{3, 5, 8}, keysOf(m))
}

func TestClear(t *testing.T) {
	d := buildDict(5, 3, 8, 1, 4, 7, 9)
	d.Clear()

	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Has(5))
	assert.Equal(t, d.End(), d.Begin())

	d.Add(2, "")
	assert.Equal(t, []int{2}, keysOf(d))
}

func TestMinMax(t *testing.T) {
	d := buildDict(5, 3, 8, 1, 9)

	minKey, ok := d.Min()
	require.True(t, ok)
	assert.Equal(t, 1, minKey)

	maxKey, ok := d.Max()
	require.True(t, ok)
	assert.Equal(t, 9, maxKey)

	empty := New[int, string]()
	_, ok = empty.Min()
	assert.False(t, ok)
	_, ok = empty.Max()
	assert.False(t, ok)
}

func TestEmptyDict(t *testing.T) {
	d := New[int, string]()

	assert.False(t, d.Has(42))
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, d.End(), d.Begin())
	assert.Nil(t, keysOf(d))
}

func TestNewFuncCustomOrder(t *testing.T) {
	d := NewFunc[int, string](func(a, b int) bool { return a > b })
	for _, k := range []int{5, 3, 8, 1} {
		d.Add(k, "")
	}

	assert.Equal(t, []int{8, 5, 3, 1}, keysOf(d))
}

func TestString(t *testing.T) {
	d := New[int, string]()
	d.Add(2, "b")
	d.Add(1, "a")

	assert.Equal(t, "[1=a, 2=b]", d.String())
	assert.Equal(t, "[]", New[int, string]().String())
}

func TestDumpFormat(t *testing.T) {
	d := buildDict(2, 1, 3)

	assert.Equal(t, " 0: 1\n: 2\n 1: 3\n", d.Dump())
	assert.Equal(t, "", New[int, string]().Dump())
}

// TestRandomOperations drives a Dict with a random add/remove sequence and
// checks the BST invariant and membership against a plain map after every
// step.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := New[int, int]()
	oracle := make(map[int]int)

	for i := 0; i < 2000; i++ {
		k := rng.Intn(200)
		if rng.Intn(3) == 0 {
			d.Remove(k)
			delete(oracle, k)
		} else {
			d.Add(k, i)
			if _, ok := oracle[k]; !ok {
				oracle[k] = i
			}
		}

		got := keysOf(d)
		require.True(t, sort.IntsAreSorted(got), "in-order keys not ascending at step %d: %v", i, got)
		require.Equal(t, len(oracle), d.Len(), "size mismatch at step %d", i)
	}

	want := make([]int, 0, len(oracle))
	for k := range oracle {
		want = append(want, k)
	}
	sort.Ints(want)
	assert.Equal(t, want, keysOf(d))

	// Values survive the churn: Add never overwrites, so each key still maps
	// to the value of its earliest insertion since the last removal.
	for k, wantV := range oracle {
		v, err := d.Get(k)
		require.NoError(t, err)
		assert.Equal(t, wantV, v, "value mismatch for key %d", k)
	}
}
