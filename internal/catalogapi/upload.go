package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"golang.org/x/sync/errgroup"
)

type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadImages uploads each file in its own request, concurrently. The
// returned URLs are in the order of files.
func (c *Client) UploadImages(ctx context.Context, files []ImageFile) ([]string, error) {
	urls := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		g.Go(func() error {
			u, err := c.uploadImage(ctx, f)
			if err != nil {
				return fmt.Errorf("upload %s: %w", f.Name, err)
			}
			urls[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

func (c *Client) uploadImage(ctx context.Context, f ImageFile) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="img"; filename=%q`, f.Name))
	contentType := f.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(f.Data)
	}
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(f.Data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	data, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/new/upload",
		body:        buf.Bytes(),
		contentType: w.FormDataContentType(),
	})
	if err != nil {
		return "", err
	}
	return parseImageURL(data)
}

// parseImageURL reads imageUrls, which the API sends either as a string or
// as an array whose first element is the URL.
func parseImageURL(data []byte) (string, error) {
	var resp struct {
		ImageURLs json.RawMessage `json:"imageUrls"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	var single string
	if err := json.Unmarshal(resp.ImageURLs, &single); err == nil && single != "" {
		return single, nil
	}
	var many []string
	if err := json.Unmarshal(resp.ImageURLs, &many); err == nil && len(many) > 0 {
		return many[0], nil
	}
	return "", fmt.Errorf("upload response has no image url")
}
