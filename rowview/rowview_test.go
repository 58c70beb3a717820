package rowview_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/go-sif/datamatrix"
	"github.com/go-sif/datamatrix/errors"
	"github.com/go-sif/datamatrix/matrix"
	"github.com/go-sif/datamatrix/rowview"
	"github.com/stretchr/testify/require"
)

func people(t *testing.T) *matrix.Matrix {
	m, err := matrix.FromValues(
		[]string{"name", "age"},
		[][]interface{}{
			{"Alice", "Bob"},
			{30, 25},
		},
		nil,
	)
	require.Nil(t, err)
	return m
}

func TestGet(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 1)
	require.Equal(t, 1, row.Position())
	name, err := row.Get("name")
	require.Nil(t, err)
	require.Equal(t, "Bob", name)
	age, err := row.Get("age")
	require.Nil(t, err)
	require.Equal(t, 25, age)
}

func TestWriteThrough(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 0)
	require.Nil(t, row.Set("age", 31))

	v, err := row.Get("age")
	require.Nil(t, err)
	require.Equal(t, 31, v)

	v, err = rowview.New(m, 0).Get("age")
	require.Nil(t, err)
	require.Equal(t, 31, v)

	col, err := m.Column("age")
	require.Nil(t, err)
	v, err = col.Get(0)
	require.Nil(t, err)
	require.Equal(t, 31, v)

	// other positions are untouched
	v, err = col.Get(1)
	require.Nil(t, err)
	require.Equal(t, 25, v)
}

func TestLiveness(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 1)
	col, err := m.Column("name")
	require.Nil(t, err)
	require.Nil(t, col.Set(1, "Robert"))
	v, err := row.Get("name")
	require.Nil(t, err)
	require.Equal(t, "Robert", v)
}

func TestMissingField(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 0)
	_, err := row.Get("nonexistent")
	require.IsType(t, errors.MissingFieldError{}, err)
	require.Equal(t, "nonexistent", err.(errors.MissingFieldError).Name)

	err = row.Set("nonexistent", 1)
	require.IsType(t, errors.MissingFieldError{}, err)
	require.Equal(t, []string{"name", "age"}, m.ColumnNames())
	require.Equal(t, 2, m.NumColumns())
}

func TestOutOfRange(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 2)
	for _, name := range m.ColumnNames() {
		_, err := row.Get(name)
		require.True(t, errors.IsIndexOutOfRange(err))
	}
	require.True(t, errors.IsIndexOutOfRange(row.Set("age", 1)))

	_, err := rowview.New(m, -1).Get("age")
	require.True(t, errors.IsIndexOutOfRange(err))
}

func TestOutOfRangeAfterShrink(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 1)
	m.Resize(1)
	_, err := row.Get("name")
	require.IsType(t, errors.IndexOutOfRangeError{}, err)
	oor := err.(errors.IndexOutOfRangeError)
	require.Equal(t, 1, oor.Index)
	require.Equal(t, 1, oor.Length)
}

func TestField(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 0)
	f := row.Field("name")
	require.Equal(t, "name", f.Name())
	v, err := f.Value()
	require.Nil(t, err)
	require.Equal(t, "Alice", v)
	require.Nil(t, f.Set("Alicia"))
	v, err = row.Get("name")
	require.Nil(t, err)
	require.Equal(t, "Alicia", v)

	_, err = row.Field("missing").Value()
	require.True(t, errors.IsMissingField(err))
	require.True(t, errors.IsMissingField(row.Field("missing").Set(1)))
}

func TestIterationOrderAndTermination(t *testing.T) {
	m, err := matrix.FromValues(
		[]string{"A", "B", "C"},
		[][]interface{}{{1}, {2}, {3}},
		nil,
	)
	require.Nil(t, err)
	row := rowview.New(m, 0)

	collect := func() ([]string, []interface{}) {
		var names []string
		var values []interface{}
		iter := row.Fields()
		for iter.HasNextField() {
			name, value, err := iter.NextField()
			require.Nil(t, err)
			names = append(names, name)
			values = append(values, value)
		}
		_, _, err := iter.NextField()
		require.True(t, errors.IsNoMoreFields(err))
		return names, values
	}
	names, values := collect()
	require.Equal(t, []string{"A", "B", "C"}, names)
	require.Equal(t, []interface{}{1, 2, 3}, values)

	// restarting produces the same pairs from the start
	names2, values2 := collect()
	require.Equal(t, names, names2)
	require.Equal(t, values, values2)
}

func TestIteratorsAreIndependent(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 0)
	first := row.Fields()
	name, _, err := first.NextField()
	require.Nil(t, err)
	require.Equal(t, "name", name)

	second := row.Fields()
	name, _, err = second.NextField()
	require.Nil(t, err)
	require.Equal(t, "name", name)

	name, value, err := first.NextField()
	require.Nil(t, err)
	require.Equal(t, "age", name)
	require.Equal(t, 30, value)
	require.False(t, first.HasNextField())
	require.True(t, second.HasNextField())
}

func TestIterationSnapshotsColumnOrder(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 0)
	iter := row.Fields().(*rowview.FieldIterator)
	require.Equal(t, 2, iter.Remaining())
	require.Nil(t, m.AddColumn("city", &datamatrix.StringColumnType{}))
	count := 0
	for iter.HasNextField() {
		_, _, err := iter.NextField()
		require.Nil(t, err)
		count++
	}
	require.Equal(t, 2, count)

	// a new pass sees the new column
	count = 0
	require.Nil(t, row.ForEachField(func(name string, value interface{}) error {
		count++
		return nil
	}))
	require.Equal(t, 3, count)
}

func TestConcurrentIteration(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 1)
	var wg sync.WaitGroup
	results := make([][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			iter := row.Fields()
			for iter.HasNextField() {
				name, _, err := iter.NextField()
				if err != nil {
					return
				}
				results[i] = append(results[i], name)
			}
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		require.Equal(t, []string{"name", "age"}, r)
	}
}

func TestForEachFieldStopsOnError(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 0)
	stop := errors.NoMoreFieldsError{}
	visited := 0
	err := row.ForEachField(func(name string, value interface{}) error {
		visited++
		return stop
	})
	require.Equal(t, stop, err)
	require.Equal(t, 1, visited)
}

func TestToMap(t *testing.T) {
	m := people(t)
	fields, err := rowview.New(m, 1).ToMap()
	require.Nil(t, err)
	require.Equal(t, map[string]interface{}{"name": "Bob", "age": 25}, fields)

	_, err = rowview.New(m, 5).ToMap()
	require.True(t, errors.IsIndexOutOfRange(err))
}

func TestTypedGetters(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 0)
	age, err := row.GetInt64("age")
	require.Nil(t, err)
	require.Equal(t, int64(30), age)
	ageF, err := row.GetFloat64("age")
	require.Nil(t, err)
	require.Equal(t, float64(30), ageF)
	ageS, err := row.GetString("age")
	require.Nil(t, err)
	require.Equal(t, "30", ageS)

	_, err = row.GetInt64("name")
	require.IsType(t, errors.IncompatibleValueError{}, err)
	_, err = row.GetBool("missing")
	require.True(t, errors.IsMissingField(err))

	require.Nil(t, row.Set("name", "true"))
	b, err := row.GetBool("name")
	require.Nil(t, err)
	require.True(t, b)
}

func TestGetInt64ParsesDecimalStrings(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 0)
	require.Nil(t, row.Set("age", "010"))
	age, err := row.GetInt64("age")
	require.Nil(t, err)
	require.Equal(t, int64(10), age)

	require.Nil(t, row.Set("age", "0x1F"))
	_, err = row.GetInt64("age")
	require.IsType(t, errors.IncompatibleValueError{}, err)
}

func TestNil(t *testing.T) {
	m := people(t)
	row := rowview.New(m, 0)
	require.False(t, row.IsNil("name"))
	require.Nil(t, row.SetNil("name"))
	require.True(t, row.IsNil("name"))
	require.False(t, row.IsNil("missing"))
}

func TestDisplay(t *testing.T) {
	m := people(t)
	out := rowview.New(m, 0).String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// border, header, border, two rows, border
	require.Len(t, lines, 6)
	require.Contains(t, lines[1], "Name")
	require.Contains(t, lines[1], "Value")
	require.Contains(t, lines[3], "name")
	require.Contains(t, lines[3], "Alice")
	require.Contains(t, lines[4], "age")
	require.Contains(t, lines[4], "30")
}

func TestDisplayFailure(t *testing.T) {
	m := people(t)
	var sb strings.Builder
	err := rowview.New(m, 7).Render(&sb)
	require.True(t, errors.IsIndexOutOfRange(err))
	require.Equal(t, "", sb.String())
	require.True(t, strings.HasPrefix(rowview.New(m, 7).String(), "<row 7:"))
}

func TestHash(t *testing.T) {
	m, err := matrix.FromValues(
		[]string{"a", "b"},
		[][]interface{}{{1, 1, 2}, {"x", "x", "x"}},
		nil,
	)
	require.Nil(t, err)
	h0, err := m.Row(0).Hash()
	require.Nil(t, err)
	h1, err := m.Row(1).Hash()
	require.Nil(t, err)
	h2, err := m.Row(2).Hash()
	require.Nil(t, err)
	require.Equal(t, h0, h1)
	require.NotEqual(t, h0, h2)
}
