package handlers

import (
	"net/http"

	"github.com/praneeth00007/backendd/internal/service"

	"github.com/gin-gonic/gin"
)

type articleRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"` // base64 data URL
}

// @Summary      List published articles
// @Tags         articles
// @Produce      json
// @Success      200  {array}  models.Article
// @Router       /articles/public [get]
func (h *Handler) listPublishedArticles(c *gin.Context) {
	out, err := h.services.ListPublished(c.Request.Context())
	if err != nil {
		h.respondError(c, "article_list_published_failed", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Get an article
// @Tags         articles
// @Produce      json
// @Param        id  path  int  true  "Article ID"
// @Success      200  {object}  models.Article
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [get]
func (h *Handler) getArticle(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	a, err := h.services.Articles.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "article_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body      articleRequest  true  "Article payload"
// @Success      200   {object}  models.Article
// @Failure      400   {object}  map[string]string
// @Router       /api/articles [post]
// @Security     BearerAuth
func (h *Handler) createArticle(c *gin.Context) {
	var req articleRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	a, err := h.services.Articles.Create(c.Request.Context(), h.username(c), service.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	})
	if err != nil {
		h.respondError(c, "article_create_failed", err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary      List own articles
// @Tags         articles
// @Produce      json
// @Success      200  {array}  models.Article
// @Router       /api/articles/my [get]
// @Security     BearerAuth
func (h *Handler) myArticles(c *gin.Context) {
	out, err := h.services.ListByAuthor(c.Request.Context(), h.username(c))
	if err != nil {
		h.respondError(c, "article_list_mine_failed", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Update an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "Article ID"
// @Param        body  body  articleRequest  true  "Article payload"
// @Success      200  {object}  models.Article
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/articles/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateArticle(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req articleRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	a, err := h.services.Articles.Update(c.Request.Context(), id, h.username(c), service.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	})
	if err != nil {
		h.respondError(c, "article_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary      Publish an article
// @Description  Admin only.
// @Tags         articles
// @Produce      json
// @Param        id  path  int  true  "Article ID"
// @Success      200  {object}  models.Article
// @Failure      403  {object}  map[string]string
// @Router       /api/articles/{id}/publish [post]
// @Security     BearerAuth
func (h *Handler) publishArticle(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	a, err := h.services.Publish(c.Request.Context(), id, h.username(c))
	if err != nil {
		h.respondError(c, "article_publish_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary      Delete an article
// @Tags         articles
// @Param        id  path  int  true  "Article ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /api/articles/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteArticle(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.services.Articles.Delete(c.Request.Context(), id, h.username(c)); err != nil {
		h.respondError(c, "article_delete_failed", err, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
