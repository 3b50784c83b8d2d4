package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/batch"
	"github.com/fekuna/omnipos-catalog-service/internal/catalogapi"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu        sync.Mutex
	products  map[string]model.Product
	finds     int
	created   []*model.ProductPayload
	updated   map[string]*model.ProductPayload
	deleted   []string
	tokens    []string
	uploads   [][]catalogapi.ImageFile
	createErr error
}

func newFakeRepo(products ...model.Product) *fakeRepo {
	r := &fakeRepo{products: map[string]model.Product{}, updated: map[string]*model.ProductPayload{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeRepo) FindAll(context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finds++
	var out []model.Product
	for _, id := range []string{"p1", "p2", "p3"} {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) Create(_ context.Context, token string, p *model.ProductPayload) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.tokens = append(r.tokens, token)
	r.created = append(r.created, p)
	return &model.Product{ID: "new-id", Name: p.Name}, nil
}

func (r *fakeRepo) Update(_ context.Context, token, id string, p *model.ProductPayload) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return nil, product.ErrProductNotFound
	}
	r.tokens = append(r.tokens, token)
	r.updated[id] = p
	return &model.Product{ID: id}, nil
}

func (r *fakeRepo) Delete(_ context.Context, token, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return product.ErrProductNotFound
	}
	r.tokens = append(r.tokens, token)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepo) UploadImages(_ context.Context, files []catalogapi.ImageFile) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploads = append(r.uploads, files)
	urls := make([]string, len(files))
	for i, f := range files {
		urls[i] = "https://cdn/" + f.Name
	}
	return urls, nil
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string][]byte{}} }

func (c *fakeCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dst)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *fakeCache) DeletePattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if ok, _ := path.Match(pattern, k); ok {
			delete(c.data, k)
		}
	}
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type fakeIndexer struct {
	mu        sync.Mutex
	docs      map[string]any
	searchErr error
	result    *search.SearchResult
	queries   []map[string]interface{}
}

func newFakeIndexer() *fakeIndexer { return &fakeIndexer{docs: map[string]any{}} }

func (f *fakeIndexer) CreateIndex(context.Context, string, string) error { return nil }

func (f *fakeIndexer) Index(_ context.Context, _ string, id string, doc any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[id] = doc
	return nil
}

func (f *fakeIndexer) Delete(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs, id)
	return nil
}

func (f *fakeIndexer) Search(_ context.Context, _ string, q map[string]interface{}) (*search.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.result, nil
}

func (f *fakeIndexer) doc(id string) (any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	return d, ok
}

type fakePublisher struct {
	mu     sync.Mutex
	events []model.ProductEvent
}

func (p *fakePublisher) Publish(_ context.Context, key string, value []byte) error {
	var e model.ProductEvent
	if err := json.Unmarshal(value, &e); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) list() []model.ProductEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.ProductEvent(nil), p.events...)
}

type fixture struct {
	repo  *fakeRepo
	cache *fakeCache
	es    *fakeIndexer
	pub   *fakePublisher
	uc    product.UseCase
}

func newFixture(products ...model.Product) *fixture {
	f := &fixture{
		repo:  newFakeRepo(products...),
		cache: newFakeCache(),
		es:    newFakeIndexer(),
		pub:   &fakePublisher{},
	}
	f.uc = NewProductUseCase(f.repo, f.cache, f.es, f.pub, logger.NewNop())
	return f
}

func sheetRows(t *testing.T, rows ...map[batch.Field]string) []batch.BatchRow {
	t.Helper()
	s := batch.NewSheet()
	for i, values := range rows {
		if i > 0 {
			s.AddRow()
		}
		for _, field := range batch.Fields {
			if v, ok := values[field]; ok {
				_, err := s.UpdateField(i, field, v)
				require.NoError(t, err)
			}
		}
	}
	return s.Rows()
}

func validInput(t *testing.T) *dto.ProductInput {
	return &dto.ProductInput{
		Name:     "Basmati Rice",
		Category: "Grains",
		Status:   true,
		Rows: sheetRows(t,
			map[batch.Field]string{batch.FieldVariant: "1 kg", batch.FieldStock: "10", batch.FieldCostPrice: "100", batch.FieldSellingPrice: "150", batch.FieldGSTPercent: "5"},
			map[batch.Field]string{batch.FieldVariant: "1kg", batch.FieldStock: "4", batch.FieldCostPrice: "90", batch.FieldSellingPrice: "140"},
			map[batch.Field]string{batch.FieldVariant: "5kg", batch.FieldStock: "2", batch.FieldCostPrice: "400", batch.FieldSellingPrice: "520"},
		),
	}
}

func TestCreateProduct(t *testing.T) {
	f := newFixture()
	f.cache.data["products:list:stale"] = []byte(`{}`)
	ctx := auth.WithToken(context.Background(), "tok")

	input := validInput(t)
	input.Thumbnail = &catalogapi.ImageFile{Name: "thumb.png", Data: []byte("t")}
	input.BannerImgs = []string{"https://cdn/existing.png"}
	input.Banners = []catalogapi.ImageFile{{Name: "b1.png", Data: []byte("1")}}

	res, err := f.uc.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "new-id", res.ID)

	require.Len(t, f.repo.created, 1)
	payload := f.repo.created[0]
	assert.Equal(t, []string{"tok"}, f.repo.tokens)
	assert.Equal(t, "https://cdn/thumb.png", payload.ProductImg)
	assert.Equal(t, []string{"https://cdn/existing.png", "https://cdn/b1.png"}, payload.BannerImgs)

	require.Len(t, payload.Type, 2)
	assert.Equal(t, "1kg", payload.Type[0].Variant)
	assert.Equal(t, 1, payload.Type[0].ID)
	require.Len(t, payload.Type[0].Batches, 2)
	assert.Equal(t, "A1", payload.Type[0].Batches[0].BatchID)
	assert.Equal(t, "B1", payload.Type[0].Batches[1].BatchID)
	assert.True(t, payload.Type[0].Batches[0].Active)
	assert.False(t, payload.Type[0].Batches[1].Active)
	assert.Equal(t, 1507.5, payload.Type[0].Batches[0].NetAmt)
	assert.Equal(t, "5kg", payload.Type[1].Variant)
	assert.Equal(t, "A1", payload.Type[1].Batches[0].BatchID)

	assert.Len(t, res.Rows, 3)
	assert.Equal(t, "A1", res.Rows[0].BatchID)

	assert.Eventually(t, func() bool { return len(f.pub.list()) == 1 }, time.Second, 5*time.Millisecond)
	event := f.pub.list()[0]
	assert.Equal(t, model.EventProductSaved, event.EventType)
	assert.Equal(t, "new-id", event.ProductID)
	require.NotNil(t, event.Summary)
	assert.Equal(t, "1kg", event.Summary.Variant)
	assert.Equal(t, 50.0, *event.Summary.Profit)

	assert.Eventually(t, func() bool { _, ok := f.es.doc("new-id"); return ok }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return !f.cache.has("products:list:stale") }, time.Second, 5*time.Millisecond)
}

func TestCreateProduct_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.ProductInput)
	}{
		{"missing name", func(in *dto.ProductInput) { in.Name = "" }},
		{"missing category", func(in *dto.ProductInput) { in.Category = "" }},
		{"no rows", func(in *dto.ProductInput) { in.Rows = nil }},
		{"bad banner url", func(in *dto.ProductInput) { in.BannerImgs = []string{"not a url"} }},
		{"too many banners", func(in *dto.ProductInput) {
			for i := 0; i < 6; i++ {
				in.BannerImgs = append(in.BannerImgs, "https://cdn/x.png")
				in.Banners = append(in.Banners, catalogapi.ImageFile{Name: "y.png"})
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			input := validInput(t)
			tt.mutate(input)

			_, err := f.uc.CreateProduct(context.Background(), input)
			assert.ErrorIs(t, err, product.ErrInvalidInput)
			assert.Empty(t, f.repo.created)
			assert.Empty(t, f.repo.uploads)
		})
	}
}

func TestCreateProduct_StrictRejectsBadRows(t *testing.T) {
	f := newFixture()
	input := validInput(t)
	input.Strict = true
	input.Rows = sheetRows(t, map[batch.Field]string{batch.FieldVariant: "1kg", batch.FieldStock: "1", batch.FieldCostPrice: "100", batch.FieldSellingPrice: "80"})

	_, err := f.uc.CreateProduct(context.Background(), input)
	var verr *batch.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Empty(t, f.repo.created)

	// Without strict the same rows go through: the engine never rejects numbers.
	input.Strict = false
	_, err = f.uc.CreateProduct(context.Background(), input)
	assert.NoError(t, err)
}

func TestCreateProduct_RepositoryError(t *testing.T) {
	f := newFixture()
	f.repo.createErr = errors.New("api down")

	_, err := f.uc.CreateProduct(context.Background(), validInput(t))
	assert.EqualError(t, err, "api down")
	assert.Empty(t, f.pub.list())
}

func TestUpdateProduct(t *testing.T) {
	f := newFixture(model.Product{ID: "p1", Name: "Old"})
	f.cache.data["products:detail:p1"] = []byte(`{"_id":"p1","name":"Old"}`)

	input := validInput(t)
	input.ID = "p1"
	res, err := f.uc.UpdateProduct(auth.WithToken(context.Background(), "tok"), input)
	require.NoError(t, err)
	assert.Equal(t, "p1", res.ID)
	assert.Equal(t, "Basmati Rice", f.repo.updated["p1"].Name)

	assert.Eventually(t, func() bool { return !f.cache.has("products:detail:p1") }, time.Second, 5*time.Millisecond)
}

func TestUpdateProduct_Errors(t *testing.T) {
	f := newFixture()

	_, err := f.uc.UpdateProduct(context.Background(), validInput(t))
	assert.ErrorIs(t, err, product.ErrInvalidInput)

	input := validInput(t)
	input.ID = "missing"
	_, err = f.uc.UpdateProduct(context.Background(), input)
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func storedProduct() model.Product {
	var p model.Product
	_ = json.Unmarshal([]byte(`{
		"_id": "p1",
		"name": "Basmati Rice",
		"category": "Grains",
		"status": true,
		"type": [
			{"variant": "1kg", "batches": [
				{"batchId": "A1", "active": false, "stock": 10, "cost_price": 100, "selling_price": 150},
				{"batchId": "B1", "active": true, "stock": 4, "cost_price": 90, "selling_price": 140}
			]}
		]
	}`), &p)
	return p
}

func TestGetProduct_CachesAndHydrates(t *testing.T) {
	f := newFixture(storedProduct())

	detail, err := f.uc.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Basmati Rice", detail.Product.Name)
	require.Len(t, detail.Rows, 2)
	assert.Equal(t, 1, detail.Rows[0].ID)
	assert.Equal(t, "B1", detail.Rows[1].BatchID)
	assert.True(t, detail.Rows[1].Active)
	assert.Equal(t, "1000", detail.Rows[0].Amt.String())

	_, err = f.uc.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, f.repo.finds)
}

func TestGetProduct_NotFound(t *testing.T) {
	f := newFixture()
	_, err := f.uc.GetProduct(context.Background(), "nope")
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestListProducts_FiltersAndPages(t *testing.T) {
	yes, no := true, false
	f := newFixture(
		model.Product{ID: "p1", Name: "Basmati Rice", Category: "Grains", Brand: "Daawat", Status: true},
		model.Product{ID: "p2", Name: "Brown Rice", Category: "Grains", Status: false},
		model.Product{ID: "p3", Name: "Green Tea", Category: "Beverages", Status: true},
	)
	f.uc = NewProductUseCase(f.repo, f.cache, nil, nil, logger.NewNop())

	tests := []struct {
		name    string
		filters *dto.ProductFilters
		ids     []string
		total   int
	}{
		{"all", nil, []string{"p1", "p2", "p3"}, 3},
		{"search name", &dto.ProductFilters{SearchQuery: "RICE"}, []string{"p1", "p2"}, 2},
		{"search category", &dto.ProductFilters{SearchQuery: "bever"}, []string{"p3"}, 1},
		{"search brand", &dto.ProductFilters{SearchQuery: "daaw"}, []string{"p1"}, 1},
		{"active only", &dto.ProductFilters{Status: &yes}, []string{"p1", "p3"}, 2},
		{"inactive only", &dto.ProductFilters{Status: &no}, []string{"p2"}, 1},
		{"category", &dto.ProductFilters{Category: "grains"}, []string{"p1", "p2"}, 2},
		{"second page", &dto.ProductFilters{Page: 2, PageSize: 2}, []string{"p3"}, 3},
		{"past the end", &dto.ProductFilters{Page: 5, PageSize: 2}, []string{}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := f.uc.ListProducts(context.Background(), tt.filters)
			require.NoError(t, err)
			ids := []string{}
			for _, s := range got {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.ids, ids)
			assert.Equal(t, tt.total, total)
		})
	}
}

func TestListProducts_UsesCache(t *testing.T) {
	f := newFixture(model.Product{ID: "p1", Name: "Rice"})

	_, _, err := f.uc.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	_, _, err = f.uc.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, f.repo.finds)
}

func TestListProducts_SearchUsesElastic(t *testing.T) {
	f := newFixture(model.Product{ID: "p1", Name: "Rice"})
	f.es.result = &search.SearchResult{}
	f.es.result.Hits.Total.Value = 7
	f.es.result.Hits.Hits = append(f.es.result.Hits.Hits, struct {
		ID     string          `json:"_id"`
		Source json.RawMessage `json:"_source"`
	}{ID: "p9", Source: json.RawMessage(`{"id":"p9","name":"Rice Flour"}`)})

	got, total, err := f.uc.ListProducts(context.Background(), &dto.ProductFilters{SearchQuery: "rice"})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, got, 1)
	assert.Equal(t, "p9", got[0].ID)
	assert.Equal(t, 0, f.repo.finds)
}

func TestListProducts_ElasticFailureFallsBack(t *testing.T) {
	f := newFixture(model.Product{ID: "p1", Name: "Rice"})
	f.es.searchErr = errors.New("cluster down")

	got, total, err := f.uc.ListProducts(context.Background(), &dto.ProductFilters{SearchQuery: "rice"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "p1", got[0].ID)
}

func TestDeleteProduct(t *testing.T) {
	f := newFixture(model.Product{ID: "p1"})
	f.es.docs["p1"] = struct{}{}

	require.NoError(t, f.uc.DeleteProduct(auth.WithToken(context.Background(), "tok"), "p1"))
	assert.Equal(t, []string{"p1"}, f.repo.deleted)
	assert.Eventually(t, func() bool {
		events := f.pub.list()
		return len(events) == 1 && events[0].EventType == model.EventProductDeleted
	}, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { _, ok := f.es.doc("p1"); return !ok }, time.Second, 5*time.Millisecond)

	assert.ErrorIs(t, f.uc.DeleteProduct(context.Background(), "p1-missing"), product.ErrProductNotFound)
	assert.ErrorIs(t, f.uc.DeleteProduct(context.Background(), ""), product.ErrInvalidInput)
}

func TestPreviewVariants(t *testing.T) {
	f := newFixture()
	rows := validInput(t).Rows

	coded, groups := f.uc.PreviewVariants(rows)
	assert.Len(t, groups, 2)
	assert.Equal(t, "A1", coded[0].BatchID)
	assert.Empty(t, rows[0].BatchID, "input rows are not modified")
}

func TestInvalidateProducts(t *testing.T) {
	f := newFixture()
	f.cache.data["products:detail:p1"] = []byte(`{}`)
	f.cache.data["products:detail:p2"] = []byte(`{}`)
	f.cache.data["products:list:abc"] = []byte(`{}`)

	require.NoError(t, f.uc.InvalidateProducts(context.Background(), []string{"p1", "p1", ""}))
	assert.False(t, f.cache.has("products:detail:p1"))
	assert.True(t, f.cache.has("products:detail:p2"))
	assert.False(t, f.cache.has("products:list:abc"))
}
