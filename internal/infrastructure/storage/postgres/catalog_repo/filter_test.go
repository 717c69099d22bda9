package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orcado/internal/domain/catalogs/client"
)

func testRepo() *BaseCatalogRepo[*client.Client] {
	return NewBaseCatalogRepo(
		nil,
		"cat_clients",
		[]string{"id", "code", "name", "created_at"},
		func() *client.Client { return &client.Client{} },
	)
}

func TestParseOrderBy(t *testing.T) {
	r := testRepo()

	tests := []struct {
		orderBy string
		want    string
		wantErr bool
	}{
		{"", "name ASC", false},
		{"code", "code ASC", false},
		{"+code", "code ASC", false},
		{"-created_at", "created_at DESC", false},
		{"-", "", true},
		{"drop table", "", true},
		{"name; DELETE FROM cat_clients", "", true},
	}

	for _, tt := range tests {
		got, err := r.parseOrderBy(tt.orderBy)
		if tt.wantErr {
			assert.Error(t, err, "orderBy=%q", tt.orderBy)
			continue
		}
		assert.NoError(t, err, "orderBy=%q", tt.orderBy)
		assert.Equal(t, tt.want, got)
	}
}
