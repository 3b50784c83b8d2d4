package handler

import (
	"context"

	catalogv1 "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ catalogv1.CategoryServiceServer = (*CategoryHandler)(nil)

type CategoryHandler struct {
	catalogv1.UnimplementedCategoryServiceServer
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) ListCategories(ctx context.Context, req *catalogv1.ListCategoriesRequest) (*catalogv1.ListCategoriesResponse, error) {
	filters := &dto.CategoryFilters{
		ActiveOnly: req.ActiveOnly,
		Search:     req.Search,
	}

	categories, err := h.uc.ListCategories(ctx, filters)
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		return nil, apperror.ToStatus(err)
	}

	protos := make([]*catalogv1.Category, len(categories))
	for i := range categories {
		protos[i] = mapModelToProto(&categories[i])
	}

	return &catalogv1.ListCategoriesResponse{Categories: protos}, nil
}

func (h *CategoryHandler) GetCategory(ctx context.Context, req *catalogv1.GetCategoryRequest) (*catalogv1.Category, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	cat, err := h.uc.GetCategory(ctx, req.Id)
	if err != nil {
		return nil, apperror.ToStatus(err)
	}
	return mapModelToProto(cat), nil
}

func mapModelToProto(m *model.Category) *catalogv1.Category {
	return &catalogv1.Category{
		Id:           m.ID,
		Name:         m.Name,
		SubCategory:  m.SubCategory,
		Slug:         m.Slug,
		Description:  m.Description,
		Status:       m.Status,
		Img:          m.Img,
		ProductCount: int32(m.ProductCount),
	}
}
