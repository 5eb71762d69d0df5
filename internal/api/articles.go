package api

import (
	"fmt"
	"net/url"
)

// --- Article Methods ---

func (c *Client) GetArticle(slug string) (*Article, error) {
	data, err := c.get(fmt.Sprintf("/articles/%s", url.PathEscape(slug)))
	if err != nil {
		return nil, err
	}
	return decodeArticle(data)
}

func (c *Client) CreateArticle(fields ArticleFields) (*Article, error) {
	data, err := c.post("/articles", map[string]any{"article": normalizeFields(fields)})
	if err != nil {
		return nil, err
	}
	return decodeArticle(data)
}

// UpdateArticle sends the fields to the article identified by slug.
func (c *Client) UpdateArticle(slug string, fields ArticleFields) (*Article, error) {
	data, err := c.put(fmt.Sprintf("/articles/%s", url.PathEscape(slug)), map[string]any{"article": normalizeFields(fields)})
	if err != nil {
		return nil, err
	}
	return decodeArticle(data)
}

func decodeArticle(data []byte) (*Article, error) {
	env, err := decodeInto[articleEnvelope](data)
	if err != nil {
		return nil, err
	}
	return &env.Article, nil
}

// normalizeFields keeps tagList a JSON array even when no tags were added.
func normalizeFields(fields ArticleFields) ArticleFields {
	if fields.TagList == nil {
		fields.TagList = []string{}
	}
	return fields
}
