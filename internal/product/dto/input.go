package dto

import (
	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/fekuna/omnipos-catalog-service/internal/catalogapi"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

const MaxBannerImages = 10

// ProductInput is a product header plus its batch table. ID is set on
// update only. Thumbnail and Banners hold new images to upload; ProductImg
// and BannerImgs hold URLs already uploaded.
type ProductInput struct {
	ID             string
	Name           string `validate:"required,max=200"`
	Alias          string `validate:"max=200"`
	SubCategory    string
	Brand          string `validate:"max=100"`
	Description    string
	Details        string
	Category       string `validate:"required"`
	Status         bool
	ProductImg     string   `validate:"omitempty,url"`
	BannerImgs     []string `validate:"max=10,dive,url"`
	Thumbnail      *catalogapi.ImageFile
	Banners        []catalogapi.ImageFile `validate:"max=10"`
	SEOTitle       string                 `validate:"max=70"`
	SEODescription string                 `validate:"max=320"`
	SEOKeywords    string
	Rows           []batch.BatchRow `validate:"required,min=1"`
	// Strict runs the row pre-check before anything is uploaded or saved.
	Strict bool
}

type ProductFilters struct {
	SearchQuery string // name, category, brand
	Category    string
	Status      *bool
	Page        int
	PageSize    int
}

type SaveResult struct {
	ID      string
	Payload *model.ProductPayload
	Rows    []batch.BatchRow
}

type ProductDetail struct {
	Product *model.Product
	Rows    []batch.BatchRow
}
