package main

import (
	"context"
	"flag"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/gin-gonic/gin"

	"szerzodes-gpt/api/handler"
	"szerzodes-gpt/api/router"
	"szerzodes-gpt/job"
	"szerzodes-gpt/logger"
	"szerzodes-gpt/logic/chat"
	"szerzodes-gpt/logic/ingestion/transform"
	"szerzodes-gpt/logic/parties"
	"szerzodes-gpt/service"
	"szerzodes-gpt/storage/cache"
	"szerzodes-gpt/storage/es"
	"szerzodes-gpt/storage/postgres"
	"szerzodes-gpt/templates"
	"szerzodes-gpt/types"
	"szerzodes-gpt/vars"
)

func main() {
	seedPath := flag.String("seed-rag", "", "load legal context seed file into rag_chunks and exit")
	flag.Parse()

	ctx := context.Background()

	log, err := logger.New(vars.LOGMODE)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// 1. 初始化 DB
	dsn := vars.SQLITEPATH
	if vars.DBDRIVER != "sqlite" {
		dsn = postgres.DSN(vars.PGHOST, vars.PGUSER, vars.PGPWD, vars.PGDB, vars.PGPORT)
	}
	db, err := postgres.InitDB(vars.DBDRIVER, dsn)
	if err != nil {
		log.Fatal("db init failed", "driver", vars.DBDRIVER, "error", err)
	}
	contractRepo := postgres.NewContractRepo(db)
	ragRepo := postgres.NewRAGRepo(db)
	partyCacheRepo := postgres.NewPartyCacheRepo(db)

	// 2. Embedder + RAG
	embedder, err := transform.NewEmbedder(ctx, vars.OLLAMA_PATH, vars.EMBEDMODEL, vars.LLMTIMEOUT, log)
	if err != nil {
		log.Fatal("embedder init failed", "error", err)
	}
	ragSvc := service.NewRAGService(ragRepo, embedder, log)

	if *seedPath != "" {
		n, err := ragSvc.Seed(ctx, *seedPath)
		if err != nil {
			log.Fatal("rag seed failed", "path", *seedPath, "error", err)
		}
		log.Info("rag seed done", "chunks", n)
		return
	}
	if n, err := ragRepo.Count(ctx); err != nil {
		log.Warn("rag chunk count failed", "error", err)
	} else if n == 0 {
		log.Warn("rag_chunks is empty, run with -seed-rag first")
	}

	// 3. LLM
	gateway, err := newGateway(ctx, log)
	if err != nil {
		log.Fatal("llm init failed", "provider", vars.LLMPROVIDER, "error", err)
	}

	// 4. 当事人缓存：进程内 LRU + Redis 或 PG
	var backing cache.Store = partyCacheRepo
	if vars.REDISADDR != "" {
		rdb, err := cache.NewRedis(ctx, vars.REDISADDR, vars.PARTYCACHETTL)
		if err != nil {
			log.Warn("redis unavailable, party cache falls back to db", "addr", vars.REDISADDR, "error", err)
		} else {
			backing = rdb
			defer rdb.Close()
		}
	}
	partyCache := cache.NewTiered(cache.NewLRU(vars.PARTYCACHESIZE, vars.PARTYCACHETTL), backing)
	normalizer := parties.NewNormalizer(gateway, partyCache, vars.MODELPARTIES, log)

	// 5. ES（可选）
	var index service.ContractIndex
	if vars.ESADDR != "" {
		esIndex, err := es.NewContractIndex(ctx, strings.Split(vars.ESADDR, ","), vars.ESINDEX, log)
		if err != nil {
			log.Warn("elasticsearch unavailable, search falls back to sql", "error", err)
		} else {
			index = esIndex
		}
	}

	// 6. 定时任务
	if c, err := job.StartCronJob(partyCacheRepo, vars.PARTYCACHETTL, log); err != nil {
		log.Warn("cron not started", "error", err)
	} else if c != nil {
		defer c.Stop()
	}

	// 7. Service
	generationSvc := service.NewGenerationService(templates.NewStore(vars.TEMPLATEDIR), normalizer, gateway, service.GenerationConfig{
		DetailedModel:   vars.MODELDETAILED,
		PartiesStrategy: vars.PARTIESSTRATEGY,
	}, log)
	assistantSvc := service.NewAssistantService(gateway, vars.MODELASSISTANT, log)
	contractSvc := service.NewContractService(contractRepo, index, log)
	exportSvc := service.NewExportService(nil)

	// 8. Handler
	generationHandler := handler.NewGenerationHandler(generationSvc, assistantSvc, types.ParseModePolicy(vars.MODEPOLICY), log)
	contractHandler := handler.NewContractHandler(contractSvc, exportSvc, log)
	ragHandler := handler.NewRAGHandler(ragSvc)

	// 9. Web Server
	if vars.LOGMODE == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	router.RegisterRoutes(r, generationHandler, contractHandler, ragHandler)

	log.Info("server running", "addr", vars.HTTPADDR, "provider", vars.LLMPROVIDER, "parties_strategy", vars.PARTIESSTRATEGY)
	if err := r.Run(vars.HTTPADDR); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}

// newGateway openai 需要 OPENAI_API_KEY；ollama 绑定单一模型
func newGateway(ctx context.Context, log *logger.Logger) (*chat.EinoGateway, error) {
	var (
		chatModel model.ToolCallingChatModel
		err       error
	)
	switch vars.LLMPROVIDER {
	case vars.ProviderOllama:
		chatModel, err = chat.CreateOllamaChatModel(ctx, vars.OLLAMA_PATH, vars.OLLAMAMODEL, vars.LLMTIMEOUT)
		if err != nil {
			return nil, err
		}
		return chat.NewFixedModelGateway(chatModel, vars.OLLAMAMODEL, log), nil
	default:
		chatModel, err = chat.CreateOpenAIChatModel(ctx, vars.OPENAIKEY, vars.OPENAIBASEURL, vars.MODELDETAILED, vars.LLMTIMEOUT)
		if err != nil {
			return nil, err
		}
		return chat.NewEinoGateway(chatModel, log), nil
	}
}
