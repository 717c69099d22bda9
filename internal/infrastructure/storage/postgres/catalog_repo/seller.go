package catalog_repo

import (
	"orcado/internal/domain/catalogs/seller"
	"orcado/internal/infrastructure/storage/postgres"
)

const sellerTable = "cat_sellers"

var _ seller.Repository = (*SellerRepo)(nil)

// SellerRepo implements seller.Repository.
type SellerRepo struct {
	*BaseCatalogRepo[*seller.Seller]
}

// NewSellerRepo creates a new seller repository.
func NewSellerRepo(tm *postgres.TxManager) *SellerRepo {
	return &SellerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			tm,
			sellerTable,
			postgres.ExtractDBColumns[seller.Seller](),
			func() *seller.Seller { return &seller.Seller{} },
		),
	}
}
