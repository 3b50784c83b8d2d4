package handler

import (
	"context"
	"fmt"
	"time"

	catalogv1 "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/internal/draft"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	producthandler "github.com/fekuna/omnipos-catalog-service/internal/product/handler"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ catalogv1.DraftServiceServer = (*DraftHandler)(nil)

type DraftHandler struct {
	catalogv1.UnimplementedDraftServiceServer

	uc     draft.UseCase
	logger logger.ZapLogger
}

func NewDraftHandler(uc draft.UseCase, log logger.ZapLogger) *DraftHandler {
	return &DraftHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *DraftHandler) CreateDraft(ctx context.Context, req *catalogv1.CreateDraftRequest) (*catalogv1.Draft, error) {
	d, err := h.uc.CreateDraft(ctx, req.ProductId)
	if err != nil {
		h.logger.Error("failed to create draft", zap.String("product_id", req.ProductId), zap.Error(err))
		return nil, apperror.ToStatus(err)
	}
	return mapDraftToProto(d), nil
}

func (h *DraftHandler) GetDraft(ctx context.Context, req *catalogv1.GetDraftRequest) (*catalogv1.Draft, error) {
	if req.DraftId == "" {
		return nil, status.Error(codes.InvalidArgument, "draft_id is required")
	}
	return h.reply(h.uc.GetDraft(ctx, req.DraftId))
}

func (h *DraftHandler) AddRow(ctx context.Context, req *catalogv1.AddRowRequest) (*catalogv1.Draft, error) {
	if req.DraftId == "" {
		return nil, status.Error(codes.InvalidArgument, "draft_id is required")
	}
	return h.reply(h.uc.AddRow(ctx, req.DraftId))
}

func (h *DraftHandler) UpdateField(ctx context.Context, req *catalogv1.UpdateFieldRequest) (*catalogv1.Draft, error) {
	if req.DraftId == "" {
		return nil, status.Error(codes.InvalidArgument, "draft_id is required")
	}
	return h.reply(h.uc.UpdateField(ctx, req.DraftId, int(req.RowIndex), req.Field, req.Value))
}

func (h *DraftHandler) SetActive(ctx context.Context, req *catalogv1.SetActiveRequest) (*catalogv1.Draft, error) {
	if req.DraftId == "" {
		return nil, status.Error(codes.InvalidArgument, "draft_id is required")
	}
	return h.reply(h.uc.SetActive(ctx, req.DraftId, req.Variant, req.Identifier))
}

func (h *DraftHandler) DeleteRow(ctx context.Context, req *catalogv1.DeleteRowRequest) (*catalogv1.Draft, error) {
	if req.DraftId == "" {
		return nil, status.Error(codes.InvalidArgument, "draft_id is required")
	}
	return h.reply(h.uc.DeleteRow(ctx, req.DraftId, int(req.RowIndex)))
}

func (h *DraftHandler) ImportRows(ctx context.Context, req *catalogv1.ImportRowsRequest) (*catalogv1.Draft, error) {
	if req.DraftId == "" {
		return nil, status.Error(codes.InvalidArgument, "draft_id is required")
	}
	if len(req.Data) == 0 {
		return nil, status.Error(codes.InvalidArgument, "data is required")
	}
	return h.reply(h.uc.ImportRows(ctx, req.DraftId, req.Data, req.Replace))
}

func (h *DraftHandler) ExportBatches(ctx context.Context, req *catalogv1.ExportBatchesRequest) (*catalogv1.ExportBatchesResponse, error) {
	if req.DraftId == "" {
		return nil, status.Error(codes.InvalidArgument, "draft_id is required")
	}

	data, err := h.uc.ExportBatches(ctx, req.DraftId)
	if err != nil {
		h.logger.Error("failed to export batches", zap.String("draft_id", req.DraftId), zap.Error(err))
		return nil, apperror.ToStatus(err)
	}

	return &catalogv1.ExportBatchesResponse{
		FileName: fmt.Sprintf("batches-%s.xlsx", req.DraftId),
		Data:     data,
	}, nil
}

func (h *DraftHandler) SubmitDraft(ctx context.Context, req *catalogv1.SubmitDraftRequest) (*catalogv1.SaveProductResponse, error) {
	if req.DraftId == "" {
		return nil, status.Error(codes.InvalidArgument, "draft_id is required")
	}
	if req.Product == nil {
		return nil, status.Error(codes.InvalidArgument, "product is required")
	}

	res, err := h.uc.Submit(ctx, req.DraftId, producthandler.InputFromProto(req.Product))
	if err != nil {
		h.logger.Error("failed to submit draft", zap.String("draft_id", req.DraftId), zap.Error(err))
		return nil, apperror.ToStatus(err)
	}

	return producthandler.SaveResultToProto(res), nil
}

func (h *DraftHandler) DeleteDraft(ctx context.Context, req *catalogv1.DeleteDraftRequest) (*catalogv1.Empty, error) {
	if req.DraftId == "" {
		return nil, status.Error(codes.InvalidArgument, "draft_id is required")
	}
	if err := h.uc.DeleteDraft(ctx, req.DraftId); err != nil {
		return nil, apperror.ToStatus(err)
	}
	return &catalogv1.Empty{}, nil
}

func (h *DraftHandler) reply(d *model.Draft, err error) (*catalogv1.Draft, error) {
	if err != nil {
		h.logger.Warn("draft request failed", zap.Error(err))
		return nil, apperror.ToStatus(err)
	}
	return mapDraftToProto(d), nil
}

func mapDraftToProto(d *model.Draft) *catalogv1.Draft {
	return &catalogv1.Draft{
		Id:        d.ID,
		ProductId: d.ProductID,
		Rows:      producthandler.RowsToProto(d.Rows),
		Version:   int32(d.Version),
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
