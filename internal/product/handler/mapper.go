package handler

import (
	catalogv1 "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/fekuna/omnipos-catalog-service/internal/catalogapi"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
)

// RowsFromProto converts request rows. Rows without ids are numbered by
// position, and rows that carry no derived columns get them computed.
func RowsFromProto(in []*catalogv1.BatchRow) []batch.BatchRow {
	rows := make([]batch.BatchRow, 0, len(in))
	for _, r := range in {
		if r == nil {
			continue
		}
		row := batch.BatchRow{
			ID:           int(r.Id),
			Variant:      batch.StripSpaces(r.Variant),
			Stock:        r.Stock,
			CostPrice:    r.CostPrice,
			SellingPrice: r.SellingPrice,
			MRPPrice:     r.MrpPrice,
			GSTPercent:   r.GstPercent,
			UnitsSold:    r.UnitsSold,
			BatchID:      r.BatchId,
			Active:       r.Active,
		}
		if row.ID == 0 {
			row.ID = len(rows) + 1
		}
		if r.GstAmount == "" && r.Profit == "" && r.Amt == "" && r.NetCost == "" && r.NetAmt == "" {
			row.Recalculate()
		} else {
			row.Derived = batch.Derived{
				GSTAmount: batch.ParseNumber(r.GstAmount),
				Profit:    batch.ParseNumber(r.Profit),
				Amt:       batch.ParseNumber(r.Amt),
				NetCost:   batch.ParseNumber(r.NetCost),
				NetAmt:    batch.ParseNumber(r.NetAmt),
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func RowsToProto(rows []batch.BatchRow) []*catalogv1.BatchRow {
	out := make([]*catalogv1.BatchRow, len(rows))
	for i, r := range rows {
		out[i] = &catalogv1.BatchRow{
			Id:           int32(r.ID),
			Variant:      r.Variant,
			Stock:        r.Stock,
			CostPrice:    r.CostPrice,
			SellingPrice: r.SellingPrice,
			MrpPrice:     r.MRPPrice,
			GstPercent:   r.GSTPercent,
			UnitsSold:    r.UnitsSold,
			GstAmount:    r.GSTAmount.StringFixed(2),
			Profit:       r.Profit.StringFixed(2),
			Amt:          r.Amt.StringFixed(2),
			NetCost:      r.NetCost.StringFixed(2),
			NetAmt:       r.NetAmt.StringFixed(2),
			BatchId:      r.BatchID,
			Active:       r.Active,
		}
	}
	return out
}

func GroupsToProto(groups []batch.VariantGroup) []*catalogv1.VariantGroup {
	out := make([]*catalogv1.VariantGroup, len(groups))
	for i, g := range groups {
		batches := make([]*catalogv1.Batch, len(g.Batches))
		for j, b := range g.Batches {
			batches[j] = &catalogv1.Batch{
				BatchId:      b.BatchID,
				Active:       b.Active,
				CostPrice:    b.CostPrice,
				SellingPrice: b.SellingPrice,
				MrpPrice:     b.MRPPrice,
				GstPercent:   b.GSTPercent,
				GstAmount:    b.GSTAmount,
				Profit:       b.Profit,
				Stock:        b.Stock,
				NetCost:      b.NetCost,
				NetAmt:       b.NetAmt,
				UnitsSold:    b.UnitsSold,
			}
		}
		out[i] = &catalogv1.VariantGroup{
			Id:      int32(g.ID),
			Variant: g.Variant,
			Batches: batches,
		}
	}
	return out
}

func ProblemsToProto(problems []batch.RowProblem) []*catalogv1.RowProblem {
	out := make([]*catalogv1.RowProblem, len(problems))
	for i, p := range problems {
		out[i] = &catalogv1.RowProblem{
			Row:     int32(p.Row),
			Field:   string(p.Field),
			Message: p.Message,
		}
	}
	return out
}

// InputFromProto builds a usecase input. A nil message yields an empty
// input, which validation then rejects.
func InputFromProto(in *catalogv1.ProductInput) *dto.ProductInput {
	if in == nil {
		return &dto.ProductInput{}
	}
	input := &dto.ProductInput{
		Name:           in.Name,
		Alias:          in.Alias,
		SubCategory:    in.SubCategory,
		Brand:          in.Brand,
		Description:    in.Description,
		Details:        in.Details,
		Category:       in.Category,
		Status:         in.Status,
		ProductImg:     in.ProductImg,
		BannerImgs:     in.BannerImgs,
		SEOTitle:       in.SeoTitle,
		SEODescription: in.SeoDescription,
		SEOKeywords:    in.SeoKeywords,
		Rows:           RowsFromProto(in.Rows),
		Strict:         in.Strict,
	}
	if in.Thumbnail != nil && len(in.Thumbnail.Data) > 0 {
		f := imageFromProto(in.Thumbnail)
		input.Thumbnail = &f
	}
	for _, img := range in.Banners {
		if img == nil || len(img.Data) == 0 {
			continue
		}
		input.Banners = append(input.Banners, imageFromProto(img))
	}
	return input
}

func imageFromProto(img *catalogv1.Image) catalogapi.ImageFile {
	return catalogapi.ImageFile{
		Name:        img.Name,
		ContentType: img.ContentType,
		Data:        img.Data,
	}
}

func SaveResultToProto(res *dto.SaveResult) *catalogv1.SaveProductResponse {
	resp := &catalogv1.SaveProductResponse{
		Id:   res.ID,
		Rows: RowsToProto(res.Rows),
	}
	if res.Payload != nil {
		resp.Variants = GroupsToProto(res.Payload.Type)
	}
	return resp
}

func mapProductToProto(m *model.Product) *catalogv1.Product {
	if m == nil {
		return nil
	}
	return &catalogv1.Product{
		Id:             m.ID,
		Name:           m.Name,
		Alias:          m.Alias,
		SubCategory:    m.SubCategory,
		Brand:          m.Brand,
		Description:    m.Description,
		Details:        m.Details,
		Category:       m.Category,
		Status:         m.Status,
		ProductImg:     m.ProductImg,
		BannerImgs:     m.BannerImgs,
		SeoTitle:       m.SEOTitle,
		SeoDescription: m.SEODescription,
		SeoKeywords:    m.SEOKeywords,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func mapSummaryToProto(s *model.ProductSummary) *catalogv1.ProductSummary {
	return &catalogv1.ProductSummary{
		Id:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		SubCategory:  s.SubCategory,
		Brand:        s.Brand,
		ProductImg:   s.ProductImg,
		Status:       s.Status,
		Variant:      s.Variant,
		BatchId:      s.BatchID,
		CostPrice:    s.CostPrice,
		SellingPrice: s.SellingPrice,
		Profit:       s.Profit,
		Stock:        s.Stock,
		CreatedAt:    s.CreatedAt,
	}
}
