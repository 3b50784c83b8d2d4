package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	DraftService_CreateDraft_FullMethodName   = "/catalog.v1.DraftService/CreateDraft"
	DraftService_GetDraft_FullMethodName      = "/catalog.v1.DraftService/GetDraft"
	DraftService_AddRow_FullMethodName        = "/catalog.v1.DraftService/AddRow"
	DraftService_UpdateField_FullMethodName   = "/catalog.v1.DraftService/UpdateField"
	DraftService_SetActive_FullMethodName     = "/catalog.v1.DraftService/SetActive"
	DraftService_DeleteRow_FullMethodName     = "/catalog.v1.DraftService/DeleteRow"
	DraftService_ImportRows_FullMethodName    = "/catalog.v1.DraftService/ImportRows"
	DraftService_ExportBatches_FullMethodName = "/catalog.v1.DraftService/ExportBatches"
	DraftService_SubmitDraft_FullMethodName   = "/catalog.v1.DraftService/SubmitDraft"
	DraftService_DeleteDraft_FullMethodName   = "/catalog.v1.DraftService/DeleteDraft"
)

type DraftServiceServer interface {
	CreateDraft(context.Context, *CreateDraftRequest) (*Draft, error)
	GetDraft(context.Context, *GetDraftRequest) (*Draft, error)
	AddRow(context.Context, *AddRowRequest) (*Draft, error)
	UpdateField(context.Context, *UpdateFieldRequest) (*Draft, error)
	SetActive(context.Context, *SetActiveRequest) (*Draft, error)
	DeleteRow(context.Context, *DeleteRowRequest) (*Draft, error)
	ImportRows(context.Context, *ImportRowsRequest) (*Draft, error)
	ExportBatches(context.Context, *ExportBatchesRequest) (*ExportBatchesResponse, error)
	SubmitDraft(context.Context, *SubmitDraftRequest) (*SaveProductResponse, error)
	DeleteDraft(context.Context, *DeleteDraftRequest) (*Empty, error)
}

// UnimplementedDraftServiceServer answers every method with codes.Unimplemented.
type UnimplementedDraftServiceServer struct{}

func (UnimplementedDraftServiceServer) CreateDraft(context.Context, *CreateDraftRequest) (*Draft, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateDraft not implemented")
}

func (UnimplementedDraftServiceServer) GetDraft(context.Context, *GetDraftRequest) (*Draft, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDraft not implemented")
}

func (UnimplementedDraftServiceServer) AddRow(context.Context, *AddRowRequest) (*Draft, error) {
	return nil, status.Error(codes.Unimplemented, "method AddRow not implemented")
}

func (UnimplementedDraftServiceServer) UpdateField(context.Context, *UpdateFieldRequest) (*Draft, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateField not implemented")
}

func (UnimplementedDraftServiceServer) SetActive(context.Context, *SetActiveRequest) (*Draft, error) {
	return nil, status.Error(codes.Unimplemented, "method SetActive not implemented")
}

func (UnimplementedDraftServiceServer) DeleteRow(context.Context, *DeleteRowRequest) (*Draft, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteRow not implemented")
}

func (UnimplementedDraftServiceServer) ImportRows(context.Context, *ImportRowsRequest) (*Draft, error) {
	return nil, status.Error(codes.Unimplemented, "method ImportRows not implemented")
}

func (UnimplementedDraftServiceServer) ExportBatches(context.Context, *ExportBatchesRequest) (*ExportBatchesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportBatches not implemented")
}

func (UnimplementedDraftServiceServer) SubmitDraft(context.Context, *SubmitDraftRequest) (*SaveProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitDraft not implemented")
}

func (UnimplementedDraftServiceServer) DeleteDraft(context.Context, *DeleteDraftRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteDraft not implemented")
}

func RegisterDraftServiceServer(s grpc.ServiceRegistrar, srv DraftServiceServer) {
	s.RegisterService(&DraftService_ServiceDesc, srv)
}

var DraftService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.v1.DraftService",
	HandlerType: (*DraftServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateDraft", Handler: unary(DraftService_CreateDraft_FullMethodName, DraftServiceServer.CreateDraft)},
		{MethodName: "GetDraft", Handler: unary(DraftService_GetDraft_FullMethodName, DraftServiceServer.GetDraft)},
		{MethodName: "AddRow", Handler: unary(DraftService_AddRow_FullMethodName, DraftServiceServer.AddRow)},
		{MethodName: "UpdateField", Handler: unary(DraftService_UpdateField_FullMethodName, DraftServiceServer.UpdateField)},
		{MethodName: "SetActive", Handler: unary(DraftService_SetActive_FullMethodName, DraftServiceServer.SetActive)},
		{MethodName: "DeleteRow", Handler: unary(DraftService_DeleteRow_FullMethodName, DraftServiceServer.DeleteRow)},
		{MethodName: "ImportRows", Handler: unary(DraftService_ImportRows_FullMethodName, DraftServiceServer.ImportRows)},
		{MethodName: "ExportBatches", Handler: unary(DraftService_ExportBatches_FullMethodName, DraftServiceServer.ExportBatches)},
		{MethodName: "SubmitDraft", Handler: unary(DraftService_SubmitDraft_FullMethodName, DraftServiceServer.SubmitDraft)},
		{MethodName: "DeleteDraft", Handler: unary(DraftService_DeleteDraft_FullMethodName, DraftServiceServer.DeleteDraft)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

type DraftServiceClient interface {
	CreateDraft(ctx context.Context, in *CreateDraftRequest, opts ...grpc.CallOption) (*Draft, error)
	GetDraft(ctx context.Context, in *GetDraftRequest, opts ...grpc.CallOption) (*Draft, error)
	AddRow(ctx context.Context, in *AddRowRequest, opts ...grpc.CallOption) (*Draft, error)
	UpdateField(ctx context.Context, in *UpdateFieldRequest, opts ...grpc.CallOption) (*Draft, error)
	SetActive(ctx context.Context, in *SetActiveRequest, opts ...grpc.CallOption) (*Draft, error)
	DeleteRow(ctx context.Context, in *DeleteRowRequest, opts ...grpc.CallOption) (*Draft, error)
	ImportRows(ctx context.Context, in *ImportRowsRequest, opts ...grpc.CallOption) (*Draft, error)
	ExportBatches(ctx context.Context, in *ExportBatchesRequest, opts ...grpc.CallOption) (*ExportBatchesResponse, error)
	SubmitDraft(ctx context.Context, in *SubmitDraftRequest, opts ...grpc.CallOption) (*SaveProductResponse, error)
	DeleteDraft(ctx context.Context, in *DeleteDraftRequest, opts ...grpc.CallOption) (*Empty, error)
}

type draftServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDraftServiceClient(cc grpc.ClientConnInterface) DraftServiceClient {
	return &draftServiceClient{cc}
}

func (c *draftServiceClient) CreateDraft(ctx context.Context, in *CreateDraftRequest, opts ...grpc.CallOption) (*Draft, error) {
	return invoke[Draft](ctx, c.cc, DraftService_CreateDraft_FullMethodName, in, opts)
}

func (c *draftServiceClient) GetDraft(ctx context.Context, in *GetDraftRequest, opts ...grpc.CallOption) (*Draft, error) {
	return invoke[Draft](ctx, c.cc, DraftService_GetDraft_FullMethodName, in, opts)
}

func (c *draftServiceClient) AddRow(ctx context.Context, in *AddRowRequest, opts ...grpc.CallOption) (*Draft, error) {
	return invoke[Draft](ctx, c.cc, DraftService_AddRow_FullMethodName, in, opts)
}

func (c *draftServiceClient) UpdateField(ctx context.Context, in *UpdateFieldRequest, opts ...grpc.CallOption) (*Draft, error) {
	return invoke[Draft](ctx, c.cc, DraftService_UpdateField_FullMethodName, in, opts)
}

func (c *draftServiceClient) SetActive(ctx context.Context, in *SetActiveRequest, opts ...grpc.CallOption) (*Draft, error) {
	return invoke[Draft](ctx, c.cc, DraftService_SetActive_FullMethodName, in, opts)
}

func (c *draftServiceClient) DeleteRow(ctx context.Context, in *DeleteRowRequest, opts ...grpc.CallOption) (*Draft, error) {
	return invoke[Draft](ctx, c.cc, DraftService_DeleteRow_FullMethodName, in, opts)
}

func (c *draftServiceClient) ImportRows(ctx context.Context, in *ImportRowsRequest, opts ...grpc.CallOption) (*Draft, error) {
	return invoke[Draft](ctx, c.cc, DraftService_ImportRows_FullMethodName, in, opts)
}

func (c *draftServiceClient) ExportBatches(ctx context.Context, in *ExportBatchesRequest, opts ...grpc.CallOption) (*ExportBatchesResponse, error) {
	return invoke[ExportBatchesResponse](ctx, c.cc, DraftService_ExportBatches_FullMethodName, in, opts)
}

func (c *draftServiceClient) SubmitDraft(ctx context.Context, in *SubmitDraftRequest, opts ...grpc.CallOption) (*SaveProductResponse, error) {
	return invoke[SaveProductResponse](ctx, c.cc, DraftService_SubmitDraft_FullMethodName, in, opts)
}

func (c *draftServiceClient) DeleteDraft(ctx context.Context, in *DeleteDraftRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, DraftService_DeleteDraft_FullMethodName, in, opts)
}
