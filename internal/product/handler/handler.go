package handler

import (
	"context"
	"errors"

	catalogv1 "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ catalogv1.ProductServiceServer = (*ProductHandler)(nil)

type ProductHandler struct {
	catalogv1.UnimplementedProductServiceServer

	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) CreateProduct(ctx context.Context, req *catalogv1.CreateProductRequest) (*catalogv1.SaveProductResponse, error) {
	if req.Product == nil {
		return nil, status.Error(codes.InvalidArgument, "product is required")
	}

	res, err := h.uc.CreateProduct(ctx, InputFromProto(req.Product))
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		return nil, apperror.ToStatus(err)
	}

	return SaveResultToProto(res), nil
}

func (h *ProductHandler) UpdateProduct(ctx context.Context, req *catalogv1.UpdateProductRequest) (*catalogv1.SaveProductResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	if req.Product == nil {
		return nil, status.Error(codes.InvalidArgument, "product is required")
	}

	input := InputFromProto(req.Product)
	input.ID = req.Id

	res, err := h.uc.UpdateProduct(ctx, input)
	if err != nil {
		h.logger.Error("failed to update product", zap.String("product_id", req.Id), zap.Error(err))
		return nil, apperror.ToStatus(err)
	}

	return SaveResultToProto(res), nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *catalogv1.GetProductRequest) (*catalogv1.ProductDetailResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	detail, err := h.uc.GetProduct(ctx, req.Id)
	if err != nil {
		return nil, apperror.ToStatus(err)
	}
	if detail == nil {
		return nil, status.Error(codes.NotFound, "product not found")
	}

	return &catalogv1.ProductDetailResponse{
		Product: mapProductToProto(detail.Product),
		Rows:    RowsToProto(detail.Rows),
	}, nil
}

func (h *ProductHandler) ListProducts(ctx context.Context, req *catalogv1.ListProductsRequest) (*catalogv1.ListProductsResponse, error) {
	filters := &dto.ProductFilters{
		SearchQuery: req.SearchQuery,
		Category:    req.Category,
		Status:      req.Status,
		Page:        int(req.Page),
		PageSize:    int(req.PageSize),
	}

	products, count, err := h.uc.ListProducts(ctx, filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		return nil, apperror.ToStatus(err)
	}

	protos := make([]*catalogv1.ProductSummary, len(products))
	for i := range products {
		protos[i] = mapSummaryToProto(&products[i])
	}

	return &catalogv1.ListProductsResponse{
		Products: protos,
		Total:    int32(count),
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *catalogv1.DeleteProductRequest) (*catalogv1.Empty, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	if err := h.uc.DeleteProduct(ctx, req.Id); err != nil {
		h.logger.Error("failed to delete product", zap.String("product_id", req.Id), zap.Error(err))
		return nil, apperror.ToStatus(err)
	}
	return &catalogv1.Empty{}, nil
}

func (h *ProductHandler) PreviewVariants(ctx context.Context, req *catalogv1.PreviewVariantsRequest) (*catalogv1.PreviewVariantsResponse, error) {
	rows, groups := h.uc.PreviewVariants(RowsFromProto(req.Rows))
	return &catalogv1.PreviewVariantsResponse{
		Rows:     RowsToProto(rows),
		Variants: GroupsToProto(groups),
	}, nil
}

// ValidateRows reports row problems in the response body rather than as an
// error, so the editor can mark every offending cell at once.
func (h *ProductHandler) ValidateRows(ctx context.Context, req *catalogv1.ValidateRowsRequest) (*catalogv1.ValidateRowsResponse, error) {
	err := h.uc.ValidateRows(RowsFromProto(req.Rows))
	if err == nil {
		return &catalogv1.ValidateRowsResponse{Valid: true}, nil
	}

	var verr *batch.ValidationError
	if errors.As(err, &verr) {
		return &catalogv1.ValidateRowsResponse{Problems: ProblemsToProto(verr.Problems)}, nil
	}
	return nil, apperror.ToStatus(err)
}
