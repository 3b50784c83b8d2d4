package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/fekuna/omnipos-catalog-service/internal/catalogapi"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/pkg/broker"
	"github.com/fekuna/omnipos-catalog-service/pkg/cache"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/search"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	indexName      = "products"
	detailCacheTTL = 5 * time.Minute
	listCacheTTL   = 5 * time.Minute

	defaultPageSize = 20
	maxPageSize     = 100
)

const indexMapping = `{
	"mappings": {
		"properties": {
			"id": { "type": "keyword" },
			"name": { "type": "text" },
			"category": { "type": "text", "fields": { "raw": { "type": "keyword" } } },
			"sub_category": { "type": "text" },
			"brand": { "type": "text" },
			"status": { "type": "boolean" },
			"variant": { "type": "keyword" },
			"cost_price": { "type": "double" },
			"selling_price": { "type": "double" },
			"profit": { "type": "double" },
			"stock": { "type": "double" }
		}
	}
}`

type productUseCase struct {
	repo      product.Repository
	cache     cache.Cache
	es        search.Indexer
	publisher broker.Publisher
	validate  *validator.Validate
	logger    logger.ZapLogger
}

// NewProductUseCase wires the product usecase. es and publisher may be nil;
// search then falls back to filtering the API list and no events are sent.
func NewProductUseCase(repo product.Repository, cache cache.Cache, es search.Indexer, publisher broker.Publisher, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:      repo,
		cache:     cache,
		es:        es,
		publisher: publisher,
		validate:  validator.New(),
		logger:    log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.ProductInput) (*dto.SaveResult, error) {
	payload, rows, err := uc.buildPayload(ctx, input)
	if err != nil {
		return nil, err
	}

	saved, err := uc.repo.Create(ctx, auth.GetToken(ctx), payload)
	if err != nil {
		return nil, err
	}
	id := ""
	if saved != nil {
		id = saved.ID
	}

	uc.afterSave(ctx, id, payload)
	return &dto.SaveResult{ID: id, Payload: payload, Rows: rows}, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.ProductInput) (*dto.SaveResult, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: missing product id", product.ErrInvalidInput)
	}
	payload, rows, err := uc.buildPayload(ctx, input)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.Update(ctx, auth.GetToken(ctx), input.ID, payload); err != nil {
		return nil, err
	}

	uc.afterSave(ctx, input.ID, payload)
	return &dto.SaveResult{ID: input.ID, Payload: payload, Rows: rows}, nil
}

// buildPayload validates the input, uploads new images and finalizes the
// batch table into variant groups.
func (uc *productUseCase) buildPayload(ctx context.Context, input *dto.ProductInput) (*model.ProductPayload, []batch.BatchRow, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", product.ErrInvalidInput, err)
	}
	if len(input.BannerImgs)+len(input.Banners) > dto.MaxBannerImages {
		return nil, nil, fmt.Errorf("%w: at most %d banner images", product.ErrInvalidInput, dto.MaxBannerImages)
	}
	if input.Strict {
		if err := batch.Validate(input.Rows); err != nil {
			return nil, nil, err
		}
	}

	productImg := input.ProductImg
	banners := append([]string{}, input.BannerImgs...)

	var uploads []catalogapi.ImageFile
	if input.Thumbnail != nil {
		uploads = append(uploads, *input.Thumbnail)
	}
	uploads = append(uploads, input.Banners...)
	if len(uploads) > 0 {
		urls, err := uc.repo.UploadImages(ctx, uploads)
		if err != nil {
			return nil, nil, fmt.Errorf("upload images: %w", err)
		}
		if input.Thumbnail != nil {
			productImg, urls = urls[0], urls[1:]
		}
		banners = append(banners, urls...)
	}

	rows, groups := batch.FinalizeRows(input.Rows)

	return &model.ProductPayload{
		Name:           input.Name,
		Alias:          input.Alias,
		SubCategory:    input.SubCategory,
		Brand:          input.Brand,
		Description:    input.Description,
		Details:        input.Details,
		Category:       input.Category,
		Status:         input.Status,
		ProductImg:     productImg,
		BannerImgs:     banners,
		SEOTitle:       input.SEOTitle,
		SEODescription: input.SEODescription,
		SEOKeywords:    input.SEOKeywords,
		Type:           groups,
	}, rows, nil
}

func (uc *productUseCase) afterSave(ctx context.Context, id string, payload *model.ProductPayload) {
	requestID := auth.GetRequestID(ctx)

	go uc.invalidateProductCache(context.Background(), id)

	if id == "" {
		// The API did not echo an id; there is nothing to index or key events by.
		uc.logger.Warn("saved product has no id", zap.String("name", payload.Name))
		return
	}

	p := productFromPayload(id, payload)
	summary := p.Summary()

	go uc.publish(context.Background(), model.EventProductSaved, id, &summary, requestID)
	go uc.syncToElastic(context.Background(), &summary)
}

func productFromPayload(id string, payload *model.ProductPayload) *model.Product {
	return &model.Product{
		ID:             id,
		Name:           payload.Name,
		Alias:          payload.Alias,
		SubCategory:    payload.SubCategory,
		Brand:          payload.Brand,
		Description:    payload.Description,
		Details:        payload.Details,
		Category:       payload.Category,
		Status:         payload.Status,
		ProductImg:     payload.ProductImg,
		BannerImgs:     payload.BannerImgs,
		SEOTitle:       payload.SEOTitle,
		SEODescription: payload.SEODescription,
		SEOKeywords:    payload.SEOKeywords,
		Type:           batch.RecordsFromGroups(payload.Type),
	}
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductDetail, error) {
	key := detailKey(id)

	var p model.Product
	found, err := uc.cache.GetJSON(ctx, key, &p)
	if err != nil {
		uc.logger.Warn("product cache read failed", zap.String("id", id), zap.Error(err))
	}
	if !found {
		fetched, err := uc.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if fetched == nil {
			return nil, product.ErrProductNotFound
		}
		p = *fetched
		if err := uc.cache.SetJSON(ctx, key, p, detailCacheTTL); err != nil {
			uc.logger.Warn("product cache write failed", zap.String("id", id), zap.Error(err))
		}
	}

	return &dto.ProductDetail{
		Product: &p,
		Rows:    batch.RowsFromVariants(p.Type),
	}, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductSummary, int, error) {
	f := normalizeFilters(filters)

	if f.SearchQuery != "" && uc.es != nil {
		summaries, total, err := uc.searchElastic(ctx, f)
		if err == nil {
			return summaries, total, nil
		}
		// If ES fails, fall through to the API list
		uc.logger.Error("ES search failed, falling back to catalog API", zap.Error(err))
	}

	cacheKey, err := uc.generateCacheKey(f)
	if err == nil {
		var cached struct {
			Products []model.ProductSummary
			Count    int
		}
		if found, err := uc.cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
			return cached.Products, cached.Count, nil
		}
	}

	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	var matched []model.ProductSummary
	for i := range products {
		if matchesFilters(&products[i], f) {
			matched = append(matched, products[i].Summary())
		}
	}
	total := len(matched)
	page := paginate(matched, f.Page, f.PageSize)

	if cacheKey != "" {
		cacheData := struct {
			Products []model.ProductSummary
			Count    int
		}{Products: page, Count: total}
		if err := uc.cache.SetJSON(ctx, cacheKey, cacheData, listCacheTTL); err != nil {
			uc.logger.Warn("product list cache write failed", zap.Error(err))
		}
	}

	return page, total, nil
}

func (uc *productUseCase) searchElastic(ctx context.Context, f dto.ProductFilters) ([]model.ProductSummary, int, error) {
	must := []map[string]interface{}{
		{
			"multi_match": map[string]interface{}{
				"query":  f.SearchQuery,
				"fields": []string{"name^3", "category", "brand", "sub_category"},
				"type":   "phrase_prefix",
			},
		},
	}
	var filter []map[string]interface{}
	if f.Category != "" {
		filter = append(filter, map[string]interface{}{
			"term": map[string]interface{}{"category.raw": f.Category},
		})
	}
	if f.Status != nil {
		filter = append(filter, map[string]interface{}{
			"term": map[string]interface{}{"status": *f.Status},
		})
	}

	q := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must":   must,
				"filter": filter,
			},
		},
		"from": (f.Page - 1) * f.PageSize,
		"size": f.PageSize,
	}

	res, err := uc.es.Search(ctx, indexName, q)
	if err != nil {
		return nil, 0, err
	}
	summaries := make([]model.ProductSummary, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var s model.ProductSummary
		if err := json.Unmarshal(hit.Source, &s); err == nil {
			summaries = append(summaries, s)
		}
	}
	return summaries, res.Hits.Total.Value, nil
}

func normalizeFilters(filters *dto.ProductFilters) dto.ProductFilters {
	var f dto.ProductFilters
	if filters != nil {
		f = *filters
	}
	f.SearchQuery = strings.TrimSpace(f.SearchQuery)
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	return f
}

// matchesFilters applies the product table filters: the search term is
// matched case-insensitively against name, category and brand, the same
// fields the search index covers.
func matchesFilters(p *model.Product, f dto.ProductFilters) bool {
	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	return true
}

func paginate(items []model.ProductSummary, page, pageSize int) []model.ProductSummary {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []model.ProductSummary{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func (uc *productUseCase) generateCacheKey(f dto.ProductFilters) (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%x", md5.Sum(data)), nil
}

func detailKey(id string) string {
	return "products:detail:" + id
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing product id", product.ErrInvalidInput)
	}
	if err := uc.repo.Delete(ctx, auth.GetToken(ctx), id); err != nil {
		return err
	}

	requestID := auth.GetRequestID(ctx)
	go uc.invalidateProductCache(context.Background(), id)
	go uc.publish(context.Background(), model.EventProductDeleted, id, nil, requestID)
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), indexName, id); err != nil {
				uc.logger.Error("failed to delete product from ES", zap.String("id", id), zap.Error(err))
			}
		}()
	}
	return nil
}

func (uc *productUseCase) PreviewVariants(rows []batch.BatchRow) ([]batch.BatchRow, []batch.VariantGroup) {
	return batch.FinalizeRows(rows)
}

func (uc *productUseCase) ValidateRows(rows []batch.BatchRow) error {
	return batch.Validate(rows)
}

// InvalidateProducts drops cached details of ids and every cached list.
func (uc *productUseCase) InvalidateProducts(ctx context.Context, ids []string) error {
	seen := make(map[string]bool, len(ids))
	var keys []string
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		keys = append(keys, detailKey(id))
	}
	sort.Strings(keys)

	var errs []error
	if err := uc.cache.Delete(ctx, keys...); err != nil {
		errs = append(errs, err)
	}
	if err := uc.cache.DeletePattern(ctx, "products:list:*"); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (uc *productUseCase) invalidateProductCache(ctx context.Context, id string) {
	var ids []string
	if id != "" {
		ids = append(ids, id)
	}
	if err := uc.InvalidateProducts(ctx, ids); err != nil {
		uc.logger.Error("failed to invalidate product cache", zap.String("id", id), zap.Error(err))
	}
}

func (uc *productUseCase) syncToElastic(ctx context.Context, s *model.ProductSummary) {
	if uc.es == nil {
		return
	}
	// Ensure index exists. A second create is a no-op.
	_ = uc.es.CreateIndex(ctx, indexName, indexMapping)

	if err := uc.es.Index(ctx, indexName, s.ID, s); err != nil {
		uc.logger.Error("failed to index product", zap.String("id", s.ID), zap.Error(err))
	}
}

func (uc *productUseCase) publish(ctx context.Context, eventType, id string, summary *model.ProductSummary, requestID string) {
	if uc.publisher == nil {
		return
	}
	event := model.ProductEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		ProductID: id,
		Summary:   summary,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("failed to marshal product event", zap.Error(err))
		return
	}
	if err := uc.publisher.Publish(ctx, id, data); err != nil {
		uc.logger.Error("failed to publish product event",
			zap.String("event_type", eventType),
			zap.String("product_id", id),
			zap.Error(err),
		)
	}
}
