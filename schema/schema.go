package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-sif/datamatrix"
	"github.com/go-sif/datamatrix/errors"
)

// column describes the position and type of a column within a Schema
type column struct {
	idx     int
	colType datamatrix.ColumnType
}

// Schema is an ordered mapping from column names to ColumnTypes. It
// describes the columns of a Matrix, or the columns a parser should produce.
type Schema struct {
	schema map[string]*column
	names  []string
}

// CreateSchema is a factory for Schemas
func CreateSchema() *Schema {
	return &Schema{
		schema: make(map[string]*column),
		names:  []string{},
	}
}

// Equals returns nil iff this and another Schema have the same columns, in the same order, with the same types
func (s *Schema) Equals(otherSchema *Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	return s.ForEachColumn(func(name string, colType datamatrix.ColumnType) error {
		other, ok := otherSchema.schema[name]
		if !ok {
			return errors.MissingFieldError{Name: name}
		}
		if s.schema[name].idx != other.idx {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(colType) != reflect.TypeOf(other.colType) {
			return fmt.Errorf("Column %s types do not match", name)
		}
		return nil
	})
}

// Clone returns a copy of this Schema
func (s *Schema) Clone() *Schema {
	newSchema := make(map[string]*column, len(s.schema))
	for k, v := range s.schema {
		newSchema[k] = &column{idx: v.idx, colType: v.colType}
	}
	names := make([]string, len(s.names))
	copy(names, s.names)
	return &Schema{schema: newSchema, names: names}
}

// NumColumns returns the number of columns in this Schema
func (s *Schema) NumColumns() int {
	return len(s.names)
}

// GetColumnType returns the ColumnType of the named column
func (s *Schema) GetColumnType(colName string) (datamatrix.ColumnType, error) {
	col, ok := s.schema[colName]
	if !ok {
		return nil, errors.MissingFieldError{Name: colName}
	}
	return col.colType, nil
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *Schema) HasColumn(colName string) bool {
	_, ok := s.schema[colName]
	return ok
}

// CreateColumn appends a new column to the Schema
func (s *Schema) CreateColumn(colName string, columnType datamatrix.ColumnType) (*Schema, error) {
	if s.HasColumn(colName) {
		return nil, errors.DuplicateColumnError{Name: colName}
	}
	s.schema[colName] = &column{idx: len(s.names), colType: columnType}
	s.names = append(s.names, colName)
	return s, nil
}

// RenameColumn renames a column within the Schema, keeping its position
func (s *Schema) RenameColumn(oldName string, newName string) (*Schema, error) {
	col, ok := s.schema[oldName]
	if !ok {
		return nil, errors.MissingFieldError{Name: oldName}
	}
	if s.HasColumn(newName) {
		return nil, errors.DuplicateColumnError{Name: newName}
	}
	s.schema[newName] = col
	delete(s.schema, oldName)
	s.names[col.idx] = newName
	return s, nil
}

// RemoveColumn removes a column from the Schema, shifting later columns down
func (s *Schema) RemoveColumn(colName string) (*Schema, bool) {
	col, ok := s.schema[colName]
	if !ok {
		return s, false
	}
	delete(s.schema, colName)
	s.names = append(s.names[:col.idx], s.names[col.idx+1:]...)
	for i := col.idx; i < len(s.names); i++ {
		s.schema[s.names[i]].idx = i
	}
	return s, true
}

// ColumnNames returns the names in the schema, in index order
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *Schema) ColumnTypes() []datamatrix.ColumnType {
	types := make([]datamatrix.ColumnType, len(s.names))
	for i, name := range s.names {
		types[i] = s.schema[name].colType
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema, in index order
func (s *Schema) ForEachColumn(fn func(name string, colType datamatrix.ColumnType) error) error {
	for _, name := range s.names {
		if err := fn(name, s.schema[name].colType); err != nil {
			return err
		}
	}
	return nil
}

// Parse builds a Schema from a comma-separated list of name:type pairs, such as
// "name:string,age:int64". A pair without a type produces an AnyColumnType column.
func Parse(list string) (*Schema, error) {
	s := CreateSchema()
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, typeName, _ := strings.Cut(part, ":")
		colType, err := datamatrix.ColumnTypeByName(strings.TrimSpace(typeName))
		if err != nil {
			return nil, err
		}
		if _, err = s.CreateColumn(strings.TrimSpace(name), colType); err != nil {
			return nil, err
		}
	}
	return s, nil
}
