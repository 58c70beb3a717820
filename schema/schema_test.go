package schema

import (
	"testing"

	"github.com/go-sif/datamatrix"
	"github.com/go-sif/datamatrix/errors"
	"github.com/stretchr/testify/require"
)

func TestSchemaEqualityBasic(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", &datamatrix.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col2", &datamatrix.StringColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col3", &datamatrix.AnyColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", &datamatrix.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col2", &datamatrix.StringColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col3", &datamatrix.AnyColumnType{})
	require.Nil(t, err)

	require.Nil(t, schema1.Equals(schema2))
}

func TestSchemaEqualityDifferentType(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", &datamatrix.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col2", &datamatrix.Float64ColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", &datamatrix.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col2", &datamatrix.StringColumnType{})
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema2))
}

func TestSchemaEqualityOrder(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", &datamatrix.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col2", &datamatrix.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col3", &datamatrix.StringColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", &datamatrix.Int64ColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col3", &datamatrix.StringColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col2", &datamatrix.Int64ColumnType{})
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema2))
}

func TestCreateDuplicateColumn(t *testing.T) {
	s := CreateSchema()
	_, err := s.CreateColumn("col1", &datamatrix.Int64ColumnType{})
	require.Nil(t, err)
	_, err = s.CreateColumn("col1", &datamatrix.StringColumnType{})
	require.IsType(t, errors.DuplicateColumnError{}, err)
	require.Equal(t, 1, s.NumColumns())
}

func TestRemoveAndRenamePreserveOrder(t *testing.T) {
	s := CreateSchema()
	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := s.CreateColumn(name, &datamatrix.AnyColumnType{})
		require.Nil(t, err)
	}
	_, removed := s.RemoveColumn("b")
	require.True(t, removed)
	_, removed = s.RemoveColumn("b")
	require.False(t, removed)
	_, err := s.RenameColumn("c", "z")
	require.Nil(t, err)
	_, err = s.RenameColumn("missing", "y")
	require.True(t, errors.IsMissingField(err))
	require.Equal(t, []string{"a", "z", "d"}, s.ColumnNames())

	var visited []string
	err = s.ForEachColumn(func(name string, colType datamatrix.ColumnType) error {
		visited = append(visited, name)
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []string{"a", "z", "d"}, visited)
}

func TestCloneIsIndependent(t *testing.T) {
	s := CreateSchema()
	_, err := s.CreateColumn("a", &datamatrix.AnyColumnType{})
	require.Nil(t, err)
	clone := s.Clone()
	_, err = clone.CreateColumn("b", &datamatrix.AnyColumnType{})
	require.Nil(t, err)
	require.Equal(t, 1, s.NumColumns())
	require.Equal(t, 2, clone.NumColumns())
}

func TestParse(t *testing.T) {
	s, err := Parse("name:string, age:int64,score:float64,notes")
	require.Nil(t, err)
	require.Equal(t, []string{"name", "age", "score", "notes"}, s.ColumnNames())
	types := s.ColumnTypes()
	require.IsType(t, &datamatrix.StringColumnType{}, types[0])
	require.IsType(t, &datamatrix.Int64ColumnType{}, types[1])
	require.IsType(t, &datamatrix.Float64ColumnType{}, types[2])
	require.IsType(t, &datamatrix.AnyColumnType{}, types[3])

	_, err = Parse("name:blob")
	require.NotNil(t, err)
	_, err = Parse("a,a")
	require.IsType(t, errors.DuplicateColumnError{}, err)
}
