package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-match-go/internal/api/handler"
	"resume-match-go/internal/api/router"
	"resume-match-go/internal/config"
	appCoreLogger "resume-match-go/internal/logger"
	"resume-match-go/internal/matcher"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/processor"

	"github.com/cloudwego/eino/components/embedding"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	var configPath string
	var addr string
	pflag.StringVarP(&configPath, "config", "c", "", "配置文件路径，留空时在常见位置查找")
	pflag.StringVar(&addr, "addr", "", "监听地址，覆盖配置文件中的server.address")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		glog.Fatalf("加载配置失败: %v", err)
	}
	if addr != "" {
		cfg.Server.Address = addr
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var embedder embedding.Embedder
	if cfg.Aliyun.APIKey != "" {
		aliyunEmbedder, err := matcher.NewAliyunEmbedder(cfg.Aliyun.APIKey, cfg.Aliyun.Embedding)
		if err != nil {
			glog.Fatalf("初始化Embedder失败: %v", err)
		}
		embedder = aliyunEmbedder
		glog.Info("阿里云Embedder初始化成功")
	} else {
		glog.Warn("未提供API密钥，语义匹配不可用，仅提取端点可用")
	}

	var procOptions []processor.MatchProcessorOption
	if cfg.Aliyun.APIKey != "" {
		chatModel, err := parser.NewQwenChatModel(cfg.Aliyun.APIKey, cfg.Aliyun.ChatModel, cfg.Aliyun.ChatBaseURL)
		if err != nil {
			glog.Fatalf("初始化通义千问客户端失败: %v", err)
		}
		procOptions = append(procOptions,
			processor.WithExtractor(processor.EngineLLM, parser.NewLLMExtractor(chatModel)))
		glog.Info("LLM提取引擎注册成功")
	} else if cfg.Parser.Engine == processor.EngineLLM {
		glog.Warn("配置要求LLM引擎但未提供API密钥，回退到启发式引擎")
	}

	matchProcessor := processor.NewMatchProcessor(cfg, embedder, procOptions...)
	glog.Info("匹配处理器初始化成功")

	pdfExtractor, err := parser.NewPDFExtractor(ctx)
	if err != nil {
		glog.Fatalf("创建PDF提取器失败: %v", err)
	}
	glog.Info("PDF提取器初始化成功")

	matchHandler := handler.NewMatchHandler(cfg, matchProcessor, pdfExtractor)

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		c = appCoreLogger.WithContext(c)
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, matchHandler)
	glog.Info("HTTP路由注册成功")
	glog.Infof("HTTP服务器启动中，监听地址: %s", cfg.Server.Address)

	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog全局日志并桥接到Hertz的hlog
func initLogger(cfg *config.Config) {
	appCoreLogger.Init(cfg.Logger)

	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
}
