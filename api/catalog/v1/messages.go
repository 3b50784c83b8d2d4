package catalogv1

type Empty struct{}

// BatchRow is one row of the batch table. Raw inputs travel as entered text;
// derived columns are decimal strings.
type BatchRow struct {
	Id           int32  `json:"id"`
	Variant      string `json:"variant"`
	Stock        string `json:"stock"`
	CostPrice    string `json:"cost_price"`
	SellingPrice string `json:"selling_price"`
	MrpPrice     string `json:"mrp_price"`
	GstPercent   string `json:"gst_percent"`
	UnitsSold    string `json:"units_sold"`
	GstAmount    string `json:"gst_amount,omitempty"`
	Profit       string `json:"profit,omitempty"`
	Amt          string `json:"amt,omitempty"`
	NetCost      string `json:"net_cost,omitempty"`
	NetAmt       string `json:"net_amt,omitempty"`
	BatchId      string `json:"batch_id,omitempty"`
	Active       bool   `json:"active"`
}

type Batch struct {
	BatchId      string  `json:"batchId"`
	Active       bool    `json:"active"`
	CostPrice    float64 `json:"cost_price"`
	SellingPrice float64 `json:"selling_price"`
	MrpPrice     float64 `json:"mrp_price"`
	GstPercent   float64 `json:"gst_percent"`
	GstAmount    float64 `json:"gst_amount"`
	Profit       float64 `json:"profit"`
	Stock        float64 `json:"stock"`
	NetCost      float64 `json:"net_cost"`
	NetAmt       float64 `json:"net_amt"`
	UnitsSold    int64   `json:"units_sold"`
}

type VariantGroup struct {
	Id      int32    `json:"id"`
	Variant string   `json:"variant"`
	Batches []*Batch `json:"batches"`
}

type RowProblem struct {
	Row     int32  `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Image is a file to upload. Data is base64 in JSON.
type Image struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	Data        []byte `json:"data"`
}

type ProductInput struct {
	Name           string      `json:"name"`
	Alias          string      `json:"alias,omitempty"`
	SubCategory    string      `json:"sub_category,omitempty"`
	Brand          string      `json:"brand,omitempty"`
	Description    string      `json:"description,omitempty"`
	Details        string      `json:"details,omitempty"`
	Category       string      `json:"category"`
	Status         bool        `json:"status"`
	ProductImg     string      `json:"product_img,omitempty"`
	BannerImgs     []string    `json:"banner_imgs,omitempty"`
	Thumbnail      *Image      `json:"thumbnail,omitempty"`
	Banners        []*Image    `json:"banners,omitempty"`
	SeoTitle       string      `json:"seo_title,omitempty"`
	SeoDescription string      `json:"seo_description,omitempty"`
	SeoKeywords    string      `json:"seo_keywords,omitempty"`
	Rows           []*BatchRow `json:"rows,omitempty"`
	Strict         bool        `json:"strict,omitempty"`
}

type Product struct {
	Id             string   `json:"id"`
	Name           string   `json:"name"`
	Alias          string   `json:"alias,omitempty"`
	SubCategory    string   `json:"sub_category,omitempty"`
	Brand          string   `json:"brand,omitempty"`
	Description    string   `json:"description,omitempty"`
	Details        string   `json:"details,omitempty"`
	Category       string   `json:"category"`
	Status         bool     `json:"status"`
	ProductImg     string   `json:"product_img,omitempty"`
	BannerImgs     []string `json:"banner_imgs,omitempty"`
	SeoTitle       string   `json:"seo_title,omitempty"`
	SeoDescription string   `json:"seo_description,omitempty"`
	SeoKeywords    string   `json:"seo_keywords,omitempty"`
	CreatedAt      string   `json:"created_at,omitempty"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
}

type ProductSummary struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	SubCategory  string   `json:"sub_category,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	ProductImg   string   `json:"product_img,omitempty"`
	Status       bool     `json:"status"`
	Variant      string   `json:"variant,omitempty"`
	BatchId      string   `json:"batch_id,omitempty"`
	CostPrice    *float64 `json:"cost_price,omitempty"`
	SellingPrice *float64 `json:"selling_price,omitempty"`
	Profit       *float64 `json:"profit,omitempty"`
	Stock        *float64 `json:"stock,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
}

type CreateProductRequest struct {
	Product *ProductInput `json:"product"`
}

type UpdateProductRequest struct {
	Id      string        `json:"id"`
	Product *ProductInput `json:"product"`
}

type SaveProductResponse struct {
	Id       string          `json:"id"`
	Variants []*VariantGroup `json:"variants"`
	Rows     []*BatchRow     `json:"rows"`
}

type GetProductRequest struct {
	Id string `json:"id"`
}

type ProductDetailResponse struct {
	Product *Product    `json:"product"`
	Rows    []*BatchRow `json:"rows"`
}

type ListProductsRequest struct {
	SearchQuery string `json:"search_query,omitempty"`
	Category    string `json:"category,omitempty"`
	Status      *bool  `json:"status,omitempty"`
	Page        int32  `json:"page,omitempty"`
	PageSize    int32  `json:"page_size,omitempty"`
}

type ListProductsResponse struct {
	Products []*ProductSummary `json:"products"`
	Total    int32             `json:"total"`
	Page     int32             `json:"page"`
	PageSize int32             `json:"page_size"`
}

type DeleteProductRequest struct {
	Id string `json:"id"`
}

type PreviewVariantsRequest struct {
	Rows []*BatchRow `json:"rows"`
}

type PreviewVariantsResponse struct {
	Rows     []*BatchRow     `json:"rows"`
	Variants []*VariantGroup `json:"variants"`
}

type ValidateRowsRequest struct {
	Rows []*BatchRow `json:"rows"`
}

type ValidateRowsResponse struct {
	Valid    bool          `json:"valid"`
	Problems []*RowProblem `json:"problems,omitempty"`
}

type Draft struct {
	Id        string      `json:"id"`
	ProductId string      `json:"product_id,omitempty"`
	Rows      []*BatchRow `json:"rows"`
	Version   int32       `json:"version"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}

type CreateDraftRequest struct {
	ProductId string `json:"product_id,omitempty"`
}

type GetDraftRequest struct {
	DraftId string `json:"draft_id"`
}

type AddRowRequest struct {
	DraftId string `json:"draft_id"`
}

type UpdateFieldRequest struct {
	DraftId  string `json:"draft_id"`
	RowIndex int32  `json:"row_index"`
	Field    string `json:"field"`
	Value    string `json:"value"`
}

type SetActiveRequest struct {
	DraftId    string `json:"draft_id"`
	Variant    string `json:"variant"`
	Identifier string `json:"identifier"`
}

type DeleteRowRequest struct {
	DraftId  string `json:"draft_id"`
	RowIndex int32  `json:"row_index"`
}

type ImportRowsRequest struct {
	DraftId string `json:"draft_id"`
	Data    []byte `json:"data"`
	// Replace drops the current rows instead of appending to them.
	Replace bool `json:"replace,omitempty"`
}

type ExportBatchesRequest struct {
	DraftId string `json:"draft_id"`
}

type ExportBatchesResponse struct {
	FileName string `json:"file_name"`
	Data     []byte `json:"data"`
}

type SubmitDraftRequest struct {
	DraftId string        `json:"draft_id"`
	Product *ProductInput `json:"product"`
}

type DeleteDraftRequest struct {
	DraftId string `json:"draft_id"`
}

type Category struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	SubCategory  string `json:"sub_category,omitempty"`
	Slug         string `json:"slug,omitempty"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status,omitempty"`
	Img          string `json:"img,omitempty"`
	ProductCount int32  `json:"product_count"`
}

type ListCategoriesRequest struct {
	ActiveOnly bool   `json:"active_only,omitempty"`
	Search     string `json:"search,omitempty"`
}

type GetCategoryRequest struct {
	Id string `json:"id"`
}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}
