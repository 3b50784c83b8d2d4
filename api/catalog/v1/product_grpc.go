package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ProductService_CreateProduct_FullMethodName   = "/catalog.v1.ProductService/CreateProduct"
	ProductService_UpdateProduct_FullMethodName   = "/catalog.v1.ProductService/UpdateProduct"
	ProductService_GetProduct_FullMethodName      = "/catalog.v1.ProductService/GetProduct"
	ProductService_ListProducts_FullMethodName    = "/catalog.v1.ProductService/ListProducts"
	ProductService_DeleteProduct_FullMethodName   = "/catalog.v1.ProductService/DeleteProduct"
	ProductService_PreviewVariants_FullMethodName = "/catalog.v1.ProductService/PreviewVariants"
	ProductService_ValidateRows_FullMethodName    = "/catalog.v1.ProductService/ValidateRows"
)

type ProductServiceServer interface {
	CreateProduct(context.Context, *CreateProductRequest) (*SaveProductResponse, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*SaveProductResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*ProductDetailResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*Empty, error)
	PreviewVariants(context.Context, *PreviewVariantsRequest) (*PreviewVariantsResponse, error)
	ValidateRows(context.Context, *ValidateRowsRequest) (*ValidateRowsResponse, error)
}

// UnimplementedProductServiceServer answers every method with codes.Unimplemented.
type UnimplementedProductServiceServer struct{}

func (UnimplementedProductServiceServer) CreateProduct(context.Context, *CreateProductRequest) (*SaveProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProduct not implemented")
}

func (UnimplementedProductServiceServer) UpdateProduct(context.Context, *UpdateProductRequest) (*SaveProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProduct not implemented")
}

func (UnimplementedProductServiceServer) GetProduct(context.Context, *GetProductRequest) (*ProductDetailResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProduct not implemented")
}

func (UnimplementedProductServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProducts not implemented")
}

func (UnimplementedProductServiceServer) DeleteProduct(context.Context, *DeleteProductRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteProduct not implemented")
}

func (UnimplementedProductServiceServer) PreviewVariants(context.Context, *PreviewVariantsRequest) (*PreviewVariantsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PreviewVariants not implemented")
}

func (UnimplementedProductServiceServer) ValidateRows(context.Context, *ValidateRowsRequest) (*ValidateRowsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateRows not implemented")
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductService_ServiceDesc, srv)
}

var ProductService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.v1.ProductService",
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateProduct", Handler: unary(ProductService_CreateProduct_FullMethodName, ProductServiceServer.CreateProduct)},
		{MethodName: "UpdateProduct", Handler: unary(ProductService_UpdateProduct_FullMethodName, ProductServiceServer.UpdateProduct)},
		{MethodName: "GetProduct", Handler: unary(ProductService_GetProduct_FullMethodName, ProductServiceServer.GetProduct)},
		{MethodName: "ListProducts", Handler: unary(ProductService_ListProducts_FullMethodName, ProductServiceServer.ListProducts)},
		{MethodName: "DeleteProduct", Handler: unary(ProductService_DeleteProduct_FullMethodName, ProductServiceServer.DeleteProduct)},
		{MethodName: "PreviewVariants", Handler: unary(ProductService_PreviewVariants_FullMethodName, ProductServiceServer.PreviewVariants)},
		{MethodName: "ValidateRows", Handler: unary(ProductService_ValidateRows_FullMethodName, ProductServiceServer.ValidateRows)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

type ProductServiceClient interface {
	CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*SaveProductResponse, error)
	UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*SaveProductResponse, error)
	GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductDetailResponse, error)
	ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*Empty, error)
	PreviewVariants(ctx context.Context, in *PreviewVariantsRequest, opts ...grpc.CallOption) (*PreviewVariantsResponse, error)
	ValidateRows(ctx context.Context, in *ValidateRowsRequest, opts ...grpc.CallOption) (*ValidateRowsResponse, error)
}

type productServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProductServiceClient(cc grpc.ClientConnInterface) ProductServiceClient {
	return &productServiceClient{cc}
}

func (c *productServiceClient) CreateProduct(ctx context.Context, in *CreateProductRequest, opts ...grpc.CallOption) (*SaveProductResponse, error) {
	return invoke[SaveProductResponse](ctx, c.cc, ProductService_CreateProduct_FullMethodName, in, opts)
}

func (c *productServiceClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*SaveProductResponse, error) {
	return invoke[SaveProductResponse](ctx, c.cc, ProductService_UpdateProduct_FullMethodName, in, opts)
}

func (c *productServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*ProductDetailResponse, error) {
	return invoke[ProductDetailResponse](ctx, c.cc, ProductService_GetProduct_FullMethodName, in, opts)
}

func (c *productServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, ProductService_ListProducts_FullMethodName, in, opts)
}

func (c *productServiceClient) DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, ProductService_DeleteProduct_FullMethodName, in, opts)
}

func (c *productServiceClient) PreviewVariants(ctx context.Context, in *PreviewVariantsRequest, opts ...grpc.CallOption) (*PreviewVariantsResponse, error) {
	return invoke[PreviewVariantsResponse](ctx, c.cc, ProductService_PreviewVariants_FullMethodName, in, opts)
}

func (c *productServiceClient) ValidateRows(ctx context.Context, in *ValidateRowsRequest, opts ...grpc.CallOption) (*ValidateRowsResponse, error) {
	return invoke[ValidateRowsResponse](ctx, c.cc, ProductService_ValidateRows_FullMethodName, in, opts)
}
