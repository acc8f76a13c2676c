package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"szerzodes-gpt/types"
)

// Contract 对应 contracts 表，保存生成或上传的合同
type Contract struct {
	DocID        string `gorm:"column:doc_id;primaryKey;type:uuid"`
	Title        string `gorm:"column:title;type:varchar(255);not null"`
	Content      string `gorm:"column:content;type:text"`
	ContractType string `gorm:"column:contract_type;type:varchar(50);index"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (Contract) TableName() string {
	return "contracts"
}

// BeforeCreate 未指定 DocID 时自动生成 UUID
func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	if c.DocID == "" {
		c.DocID = uuid.NewString()
	}
	return nil
}

func (c *Contract) View() types.ContractView {
	return types.ContractView{
		DocID:        c.DocID,
		Title:        c.Title,
		Content:      c.Content,
		ContractType: c.ContractType,
		CreatedAt:    c.CreatedAt,
	}
}

// RAGChunk 法律条文片段，Embedding 为 JSON 数组
type RAGChunk struct {
	ID        uint           `gorm:"primaryKey"`
	Source    string         `gorm:"column:source;type:varchar(255);index"`
	Content   string         `gorm:"column:content;type:text;not null"`
	Embedding datatypes.JSON `gorm:"column:embedding"`
	CreatedAt time.Time
}

func (RAGChunk) TableName() string {
	return "rag_chunks"
}

// PartyCacheEntry 当事人解析结果的持久化缓存
type PartyCacheEntry struct {
	Key       string         `gorm:"column:cache_key;primaryKey;type:char(64)"`
	Payload   datatypes.JSON `gorm:"column:payload;not null"`
	CreatedAt time.Time      `gorm:"index"`
}

func (PartyCacheEntry) TableName() string {
	return "party_cache"
}
