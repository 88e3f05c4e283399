package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/Skotchmaster/dummyjson/internal/models"
	"github.com/Skotchmaster/dummyjson/pkg/config"
)

// Fields searched by Match, mirroring the in-memory product search.
var searchFields = []string{"title", "description", "category", "brand"}

func NewClient(cfg config.Config, logger *slog.Logger) (*elasticsearch.Client, error) {
	logger.Info("es_connecting", "url", cfg.ESURL, "user", cfg.ESUser)

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.ESURL},
		Username:  cfg.ESUser,
		Password:  cfg.ESPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("es: new client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("es: info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("es: info: %s: %s", res.Status(), body)
	}

	logger.Info("es_connected")
	return client, nil
}

// ProductIndex keeps a copy of the product catalog in Elasticsearch and
// answers substring queries against it.
type ProductIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewProductIndex(es *elasticsearch.Client, index string) *ProductIndex {
	return &ProductIndex{es: es, index: index}
}

func (ix *ProductIndex) mapping() map[string]any {
	props := map[string]any{
		"id": map[string]any{"type": "integer"},
	}
	for _, f := range searchFields {
		props[f] = map[string]any{"type": "keyword"}
	}
	return map[string]any{"mappings": map[string]any{"properties": props}}
}

// Rebuild drops the index and loads products into a fresh one.
func (ix *ProductIndex) Rebuild(ctx context.Context, products []models.Product) error {
	res, err := ix.es.Indices.Delete([]string{ix.index}, ix.es.Indices.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("es: delete index: %w", err)
	}
	res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("es: delete index: %s", res.Status())
	}

	body, err := json.Marshal(ix.mapping())
	if err != nil {
		return err
	}
	res, err = ix.es.Indices.Create(ix.index,
		ix.es.Indices.Create.WithContext(ctx),
		ix.es.Indices.Create.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return fmt.Errorf("es: create index: %w", err)
	}
	res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("es: create index: %s", res.Status())
	}

	if len(products) == 0 {
		return nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, p := range products {
		meta := map[string]any{"index": map[string]any{"_id": strconv.Itoa(p.ID)}}
		doc := map[string]any{
			"id":          p.ID,
			"title":       p.Title,
			"description": p.Description,
			"category":    p.Category,
			"brand":       p.Brand,
		}
		if err := enc.Encode(meta); err != nil {
			return err
		}
		if err := enc.Encode(doc); err != nil {
			return err
		}
	}

	res, err = ix.es.Bulk(&buf,
		ix.es.Bulk.WithContext(ctx),
		ix.es.Bulk.WithIndex(ix.index),
		ix.es.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("es: bulk: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("es: bulk: %s", res.Status())
	}

	var bulk struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulk); err != nil {
		return fmt.Errorf("es: bulk response: %w", err)
	}
	if bulk.Errors {
		return fmt.Errorf("es: bulk: some documents were rejected")
	}
	return nil
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

func (ix *ProductIndex) query(q string) map[string]any {
	pattern := "*" + wildcardEscaper.Replace(q) + "*"
	should := make([]any, 0, len(searchFields))
	for _, f := range searchFields {
		should = append(should, map[string]any{
			"wildcard": map[string]any{
				f: map[string]any{"value": pattern, "case_insensitive": true},
			},
		})
	}
	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{"should": should, "minimum_should_match": 1},
		},
		"_source": []string{"id"},
		"sort":    []any{map[string]any{"id": "asc"}},
		"size":    10000,
	}
}

// Match returns the ids of products matching q, ordered by id.
func (ix *ProductIndex) Match(ctx context.Context, q string) ([]int, error) {
	body, err := json.Marshal(ix.query(q))
	if err != nil {
		return nil, err
	}

	res, err := ix.es.Search(
		ix.es.Search.WithContext(ctx),
		ix.es.Search.WithIndex(ix.index),
		ix.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("es: search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("es: search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID int `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("es: decode search: %w", err)
	}

	ids := make([]int, len(r.Hits.Hits))
	for i, h := range r.Hits.Hits {
		ids[i] = h.Source.ID
	}
	return ids, nil
}
