package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// NewsHandler handles system-wide news
type NewsHandler struct {
	newsRepository repositories.NewsRepository
	notifier       Notifier
	logs           repositories.ActivityLogRepository
}

func NewNewsHandler(newsRepo repositories.NewsRepository, notifier Notifier, logs repositories.ActivityLogRepository) *NewsHandler {
	return &NewsHandler{newsRepository: newsRepo, notifier: notifier, logs: logs}
}

func (h *NewsHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/news", h.ListNews)
}

func (h *NewsHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/news", h.CreateNews)
	g.DELETE("/news/:id", h.DeleteNews)
}

func (h *NewsHandler) ListNews(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	news, err := h.newsRepository.List(c.Request().Context(), int64((page-1)*limit), int64(limit))
	if err != nil {
		return storageError(err, "News not found")
	}
	return c.JSON(http.StatusOK, news)
}

// CreateNews publishes an article and notifies every user
func (h *NewsHandler) CreateNews(c echo.Context) error {
	var req models.CreateNewsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	news := &models.News{Title: req.Title, Content: req.Content, AuthorID: getUserIDFromContext(c)}
	if err := h.newsRepository.Create(ctx, news); err != nil {
		return storageError(err, "News not found")
	}

	if _, err := h.notifier.NotifyGlobal(ctx, newsMessage(req.Title), models.CategoryNews); err != nil {
		log.Printf("Error notifying news %s: %v", news.ID.Hex(), err)
	}

	recordActivity(c, h.logs, "News published: "+req.Title)

	return c.JSON(http.StatusCreated, news)
}

func (h *NewsHandler) DeleteNews(c echo.Context) error {
	id := c.Param("id")
	if err := h.newsRepository.Delete(c.Request().Context(), id); err != nil {
		return storageError(err, "News not found")
	}
	recordActivity(c, h.logs, "News deleted: "+id)
	return c.NoContent(http.StatusNoContent)
}
