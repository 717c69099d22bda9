package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orcado/internal/core/entity"
	"orcado/internal/core/id"
)

type testCatalog struct {
	entity.Catalog
	Email    *string `db:"email" json:"email"`
	Internal string  `db:"-"`
	NoTag    string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[testCatalog]()

	for _, expected := range []string{
		"id", "deletion_mark", "version", "created_at", "updated_at",
		"code", "name", "email",
	} {
		assert.Contains(t, cols, expected)
	}
	assert.NotContains(t, cols, "-")
	assert.NotContains(t, cols, "Internal")
	assert.NotContains(t, cols, "NoTag")
}

func TestStructToMap(t *testing.T) {
	email := "joao@example.com"
	c := testCatalog{
		Catalog: entity.Catalog{
			BaseEntity: entity.BaseEntity{
				ID:           id.New(),
				DeletionMark: true,
				Version:      3,
			},
			Code: "CLI-00001",
			Name: "João Ltda",
		},
		Email:    &email,
		Internal: "hidden",
	}

	m := StructToMap(c)

	assert.Equal(t, c.ID, m["id"])
	assert.Equal(t, true, m["deletion_mark"])
	assert.Equal(t, 3, m["version"])
	assert.Equal(t, "CLI-00001", m["code"])
	assert.Equal(t, "João Ltda", m["name"])
	assert.Equal(t, &email, m["email"])
	_, ok := m["-"]
	assert.False(t, ok)
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
}
