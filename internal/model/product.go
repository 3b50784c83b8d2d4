package model

import (
	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/shopspring/decimal"
)

// Product is a product as the catalog API stores it.
type Product struct {
	ID             string                `json:"_id,omitempty"`
	Name           string                `json:"name"`
	Alias          string                `json:"alias"`
	SubCategory    string                `json:"subCategory"`
	Brand          string                `json:"brand"`
	Description    string                `json:"description"`
	Details        string                `json:"details"`
	Category       string                `json:"category"`
	Status         bool                  `json:"status"`
	ProductImg     string                `json:"productImg"`
	BannerImgs     []string              `json:"bannerImgs"`
	SEOTitle       string                `json:"seo_title"`
	SEODescription string                `json:"seo_description"`
	SEOKeywords    string                `json:"seo_keywords"`
	Type           []batch.VariantRecord `json:"type"`
	CreatedAt      string                `json:"createdAt,omitempty"`
	UpdatedAt      string                `json:"updatedAt,omitempty"`
}

// ProductPayload is the body sent on create and update. Type carries the
// finalized variant groups.
type ProductPayload struct {
	Name           string               `json:"name"`
	Alias          string               `json:"alias"`
	SubCategory    string               `json:"subCategory"`
	Brand          string               `json:"brand"`
	Description    string               `json:"description"`
	Details        string               `json:"details"`
	Category       string               `json:"category"`
	Status         bool                 `json:"status"`
	ProductImg     string               `json:"productImg"`
	BannerImgs     []string             `json:"bannerImgs"`
	SEOTitle       string               `json:"seo_title"`
	SEODescription string               `json:"seo_description"`
	SEOKeywords    string               `json:"seo_keywords"`
	Type           []batch.VariantGroup `json:"type"`
}

// ProductSummary is the list view of a product: the header plus the prices
// of the first active batch found across its variants.
type ProductSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	SubCategory  string   `json:"sub_category"`
	Brand        string   `json:"brand"`
	ProductImg   string   `json:"product_img"`
	Status       bool     `json:"status"`
	Variant      string   `json:"variant,omitempty"`
	BatchID      string   `json:"batch_id,omitempty"`
	CostPrice    *float64 `json:"cost_price,omitempty"`
	SellingPrice *float64 `json:"selling_price,omitempty"`
	Profit       *float64 `json:"profit,omitempty"`
	Stock        *float64 `json:"stock,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
}

func (p *Product) Summary() ProductSummary {
	s := ProductSummary{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		Brand:       p.Brand,
		ProductImg:  p.ProductImg,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
	for _, v := range p.Type {
		for _, b := range v.Batches {
			if b.Active == nil || !*b.Active {
				continue
			}
			s.Variant = v.Variant
			s.BatchID = b.BatchID
			s.CostPrice = b.CostPrice
			s.SellingPrice = b.SellingPrice
			s.Stock = b.Stock
			if b.CostPrice != nil && b.SellingPrice != nil {
				profit := decimal.NewFromFloat(*b.SellingPrice).
					Sub(decimal.NewFromFloat(*b.CostPrice)).
					Round(2).InexactFloat64()
				s.Profit = &profit
			}
			return s
		}
	}
	return s
}
