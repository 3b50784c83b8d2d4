package model

type Category struct {
	ID             string `json:"_id"`
	Name           string `json:"categories_name"`
	SubCategory    string `json:"sub_category,omitempty"`
	Slug           string `json:"slug,omitempty"`
	Description    string `json:"description,omitempty"`
	Status         string `json:"status,omitempty"`
	Img            string `json:"img,omitempty"`
	ProductCount   int    `json:"product_count"`
	SEOTitle       string `json:"seo_title,omitempty"`
	SEODescription string `json:"seo_description,omitempty"`
}

func (c *Category) IsActive() bool {
	return c.Status == "" || c.Status == "active"
}
