// Package rag 对小规模法律条文表做线性余弦扫描
package rag

import (
	"math"
	"sort"
)

type Chunk struct {
	Source    string
	Content   string
	Embedding []float64
}

type Scored struct {
	Chunk
	Score float64
}

// Cosine 维度不一致或零向量时返回 0
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// TopK 分数相同时保持输入顺序
func TopK(query []float64, chunks []Chunk, k int) []Scored {
	scored := make([]Scored, 0, len(chunks))
	for _, c := range chunks {
		scored = append(scored, Scored{Chunk: c, Score: Cosine(query, c.Embedding)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if k > 0 && len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
