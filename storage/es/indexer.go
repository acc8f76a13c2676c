package es

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/logger"
)

// Document 写入索引的合同文档
type Document struct {
	DocID        string    `json:"doc_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ContractType string    `json:"contract_type"`
	CreatedAt    time.Time `json:"created_at"`
}

type ContractIndex struct {
	client *elasticsearch.Client
	index  string
	log    *logger.Logger
}

// NewContractIndex 初始化 ES 客户端并确保索引存在
func NewContractIndex(ctx context.Context, addresses []string, indexName string, log *logger.Logger) (*ContractIndex, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: addresses})
	if err != nil {
		return nil, errs.External("es client", err)
	}
	idx := &ContractIndex{client: es, index: indexName, log: log.With("component", "ES")}
	if err := idx.initMapping(ctx); err != nil {
		return nil, err
	}
	return idx, nil
}

// 使用内置 hungarian 分析器，无需安装插件
const mapping = `
{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 0
  },
  "mappings": {
    "properties": {
      "doc_id":        { "type": "keyword" },
      "title": {
        "type": "text",
        "analyzer": "hungarian",
        "fields": { "keyword": { "type": "keyword" } }
      },
      "content":       { "type": "text", "analyzer": "hungarian" },
      "contract_type": { "type": "keyword" },
      "created_at":    { "type": "date" }
    }
  }
}`

func (e *ContractIndex) initMapping(ctx context.Context) error {
	res, err := e.client.Indices.Exists([]string{e.index}, e.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return errs.External("es exists", err)
	}
	res.Body.Close()
	if res.StatusCode == 200 {
		return nil
	}

	e.log.Info("[ES] creating index", "index", e.index)
	res, err = e.client.Indices.Create(
		e.index,
		e.client.Indices.Create.WithBody(strings.NewReader(mapping)),
		e.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return errs.External("es create index", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return errs.External("es create index", fmt.Errorf("%s", res.String()))
	}
	return nil
}

// Store 批量写入，DocID 作为 ES 的 _id，重复写入即覆盖
func (e *ContractIndex) Store(ctx context.Context, docs ...Document) error {
	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.index,
		Client:        e.client,
		FlushInterval: time.Second,
		Refresh:       "true",
	})
	if err != nil {
		return errs.External("es bulk", err)
	}

	var failed atomic.Int64
	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.DocID,
			Body:       strings.NewReader(string(data)),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				e.log.Warn("[ES] bulk item failed", "doc_id", item.DocumentID, "error", err, "reason", res.Error.Reason)
			},
		})
		if err != nil {
			return errs.External("es bulk add", err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return errs.External("es bulk close", err)
	}
	if n := failed.Load(); n > 0 {
		return errs.External("es bulk", fmt.Errorf("%d documents failed", n))
	}
	return nil
}

func (e *ContractIndex) DeleteByDocID(ctx context.Context, docID string) error {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"doc_id": docID,
			},
		},
	}
	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return err
	}

	res, err := e.client.DeleteByQuery(
		[]string{e.index},
		strings.NewReader(buf.String()),
		e.client.DeleteByQuery.WithContext(ctx),
		e.client.DeleteByQuery.WithRefresh(true),
	)
	if err != nil {
		return errs.External("es delete", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return errs.External("es delete", fmt.Errorf("%s", res.String()))
	}
	e.log.Info("[ES] deleted", "doc_id", docID)
	return nil
}
