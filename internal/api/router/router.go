package router

import (
	"context"
	"encoding/json"

	"resume-match-go/internal/api/handler"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, matchHandler *handler.MatchHandler) {
	api := h.Group("/api/v1")

	// 结构化提取：JSON文本请求，或multipart上传PDF文件
	api.POST("/resume/extract", func(c context.Context, ctx *app.RequestContext) {
		if fileHeader, err := ctx.FormFile("file"); err == nil {
			file, err := fileHeader.Open()
			if err != nil {
				ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
				return
			}
			defer file.Close()

			record, err := matchHandler.HandleExtractPDF(c, file, fileHeader.Filename, ctx.PostForm("engine"))
			if err != nil {
				ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
				return
			}
			ctx.JSON(consts.StatusOK, record)
			return
		}

		var req handler.ExtractRequest
		if err := json.Unmarshal(ctx.Request.Body(), &req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体不是合法JSON"})
			return
		}
		record, err := matchHandler.HandleExtract(c, &req)
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, record)
	})

	// 简历-岗位匹配
	api.POST("/resume/match", func(c context.Context, ctx *app.RequestContext) {
		var req handler.MatchRequest
		if err := json.Unmarshal(ctx.Request.Body(), &req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体不是合法JSON"})
			return
		}
		resp, err := matchHandler.HandleMatch(c, &req)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
