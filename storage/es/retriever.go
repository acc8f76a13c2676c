package es

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"szerzodes-gpt/errs"
)

// Hit 检索命中，只带 doc_id，正文回 PG 取
type Hit struct {
	DocID string
	Score float64
}

// Filter 可选过滤条件
type Filter struct {
	ContractType string
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string  `json:"_id"`
			Score  float64 `json:"_score"`
			Source struct {
				DocID string `json:"doc_id"`
			} `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search BM25 检索标题和正文
func (e *ContractIndex) Search(ctx context.Context, query string, filter *Filter, topK int) ([]Hit, error) {
	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(buildQuery(query, filter, topK)); err != nil {
		return nil, fmt.Errorf("error encoding query: %w", err)
	}
	e.log.Debug("[ES] query", "body", buf.String())

	req := esapi.SearchRequest{
		Index: []string{e.index},
		Body:  strings.NewReader(buf.String()),
	}
	res, err := req.Do(ctx, e.client)
	if err != nil {
		return nil, errs.External("es search", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, errs.External("es search", fmt.Errorf("%s", res.String()))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errs.External("es decode", err)
	}
	return collectHits(parsed), nil
}

func collectHits(parsed searchResponse) []Hit {
	seen := make(map[string]struct{}, len(parsed.Hits.Hits))
	hits := make([]Hit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		id := h.Source.DocID
		if id == "" {
			id = h.ID
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		hits = append(hits, Hit{DocID: id, Score: h.Score})
	}
	return hits
}

func buildQuery(query string, filter *Filter, topK int) map[string]interface{} {
	if topK <= 0 {
		topK = 10
	}
	boolQuery := map[string]interface{}{
		"must": []map[string]interface{}{
			{
				"multi_match": map[string]interface{}{
					"query":  query,
					"fields": []string{"title^2", "content"},
				},
			},
		},
	}
	if filter != nil && filter.ContractType != "" {
		boolQuery["filter"] = []map[string]interface{}{
			{"term": map[string]interface{}{"contract_type": filter.ContractType}},
		}
	}
	return map[string]interface{}{
		"query":   map[string]interface{}{"bool": boolQuery},
		"size":    topK,
		"_source": []string{"doc_id"},
	}
}
