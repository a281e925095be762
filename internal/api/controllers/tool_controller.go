package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/hirebot/hirebot/internal/domain/entities"
	"github.com/hirebot/hirebot/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ToolController exposes the registered tools over HTTP so the agent
// runtime (or n8n itself) can invoke them remotely.
type ToolController struct {
	logger *zap.Logger
	tools  map[string]entities.Tool
}

func NewToolController(logger *zap.Logger, registered []entities.Tool) *ToolController {
	tools := make(map[string]entities.Tool, len(registered))
	for _, tool := range registered {
		tools[tool.Name()] = tool
	}
	return &ToolController{
		logger: logger,
		tools:  tools,
	}
}

func (c *ToolController) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/tools", c.ListToolsHandler)
	e.POST("/api/tools/:name", c.ExecuteToolHandler)
}

type toolSummary struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Parameters  []entities.Parameter `json:"parameters"`
}

func (c *ToolController) ListToolsHandler(eCtx echo.Context) error {
	summaries := make([]toolSummary, 0, len(c.tools))
	for _, tool := range c.tools {
		summaries = append(summaries, toolSummary{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return eCtx.JSON(http.StatusOK, summaries)
}

// ExecuteToolHandler passes the request body through to the tool as raw
// arguments. Validation errors map to 400; everything else the tool
// already reports inside its own result payload.
func (c *ToolController) ExecuteToolHandler(eCtx echo.Context) error {
	tool, ok := c.tools[eCtx.Param("name")]
	if !ok {
		return eCtx.JSON(http.StatusNotFound, map[string]string{"error": "unknown tool: " + eCtx.Param("name")})
	}

	body, err := io.ReadAll(eCtx.Request().Body)
	if err != nil {
		return eCtx.JSON(http.StatusBadRequest, map[string]string{"error": "failed to read request body"})
	}

	result, err := tool.Execute(string(body))
	if err != nil {
		switch err.(type) {
		case *errors.ValidationError:
			return eCtx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			c.logger.Error("Tool execution failed", zap.String("tool", tool.Name()), zap.Error(err))
			return eCtx.JSON(http.StatusInternalServerError, map[string]string{"error": "tool execution failed"})
		}
	}

	// The free-text tool passes non-JSON upstream bodies through verbatim;
	// only label the response JSON when it actually is.
	if json.Valid([]byte(result)) {
		return eCtx.JSONBlob(http.StatusOK, []byte(result))
	}
	return eCtx.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, []byte(result))
}
