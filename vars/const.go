package vars

import (
	"os"
	"strconv"
	"strings"
	"time"

	// 在读取下方环境变量前加载 .env
	_ "github.com/joho/godotenv/autoload"
)

// GetEnv 获取环境变量，如果不存在则返回默认值
func GetEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	v := GetEnv(key, "")
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	v := GetEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

const (
	// 模型名称
	GPT4OMINI = "gpt-4o-mini"
	GPT4O     = "gpt-4o"
	GPT51     = "gpt-5.1"
	QWEN7B    = "qwen2.5:7b"
	NOMIC     = "nomic-embed-text"

	// LLM 提供方
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"

	// 快速模式当事人解析策略
	PartiesNormalize = "normalize"
	PartiesRaw       = "raw"

	// 生成模式校验策略
	ModePolicyStrict  = "strict"
	ModePolicyLenient = "lenient"

	// 空白占位标记，渲染后的合同里必须能看到待填的空位
	BlankMarker = "__________"

	// 模型回复中的分隔符
	ContractDelimiter = "[SZERZŐDÉS]"
	SummaryDelimiter  = "[OSSZEFOGLALO]"

	// 审查结果最多保留的问题数
	MaxReviewIssues = 5
)

// 环境变量配置（支持 Docker 部署）
var (
	HTTPADDR = GetEnv("HTTP_ADDR", ":8081")
	LOGMODE  = GetEnv("LOG_MODE", "dev")

	// LLM
	LLMPROVIDER   = GetEnv("LLM_PROVIDER", ProviderOpenAI)
	OPENAIKEY     = GetEnv("OPENAI_API_KEY", "")
	OPENAIBASEURL = GetEnv("OPENAI_BASE_URL", "")
	OLLAMA_PATH   = GetEnv("OLLAMA_PATH", "http://localhost:11434")
	OLLAMAMODEL   = GetEnv("OLLAMA_MODEL", QWEN7B)
	LLMTIMEOUT    = GetEnvDuration("LLM_TIMEOUT", 120*time.Second)

	MODELFAST      = GetEnv("MODEL_FAST", GPT4OMINI)
	MODELDETAILED  = GetEnv("MODEL_DETAILED", GPT4O)
	MODELASSISTANT = GetEnv("MODEL_ASSISTANT", GPT51)
	MODELPARTIES   = GetEnv("MODEL_PARTIES", MODELFAST)
	EMBEDMODEL     = GetEnv("EMBED_MODEL", NOMIC)

	// DB
	DBDRIVER   = GetEnv("DB_DRIVER", "postgres")
	SQLITEPATH = GetEnv("SQLITE_PATH", "contracts.db")
	PGUSER     = GetEnv("PGUSER", "postgres")
	PGPWD      = GetEnv("PGPWD", "")
	PGDB       = GetEnv("PGDB", "szerzodesgpt")
	PGHOST     = GetEnv("PGHOST", "localhost")
	PGPORT     = GetEnv("PGPORT", "5432")

	// ES，留空则不启用全文检索
	ESADDR  = GetEnv("ESADDR", "")
	ESINDEX = GetEnv("ES_INDEX", "contracts_v1")

	// Redis，留空则当事人缓存落 PG
	REDISADDR = GetEnv("REDIS_ADDR", "")

	// 当事人缓存
	PARTYCACHESIZE = GetEnvInt("PARTY_CACHE_SIZE", 1024)
	PARTYCACHETTL  = GetEnvDuration("PARTY_CACHE_TTL", 30*24*time.Hour)

	PARTIESSTRATEGY = GetEnv("PARTIES_STRATEGY", PartiesNormalize)
	MODEPOLICY      = GetEnv("GENERATION_MODE_POLICY", ModePolicyStrict)
	TEMPLATEDIR     = GetEnv("TEMPLATE_DIR", "")
)
