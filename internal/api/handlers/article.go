package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/0xIG/article-crud/internal/api/middleware"
	"github.com/0xIG/article-crud/internal/cache"
	"github.com/0xIG/article-crud/internal/domain"
	"github.com/0xIG/article-crud/internal/service"
	"github.com/go-chi/chi/v5"
)

type ArticleHandler struct {
	articleService *service.ArticleService
	authService    *service.AuthService
	responseCache  *cache.ResponseCache
}

func NewArticleHandler(articleService *service.ArticleService, authService *service.AuthService, responseCache *cache.ResponseCache) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		authService:    authService,
		responseCache:  responseCache,
	}
}

type ArticleCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type ArticleEditRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
}

type ArticleDeleteResponse struct {
	ArticleID uint `json:"articleId"`
	Success   bool `json:"success"`
}

type ArticleListResponse struct {
	Items []*domain.Article `json:"items"`
	Total int64             `json:"total"`
}

func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	articleID, err := parseArticleID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid article id")
		return
	}

	article, err := h.articleService.GetByID(r.Context(), articleID)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		log.Printf("ERROR [ArticleHandler.Get] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, article)
}

func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ArticleCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "Title, description and content are required")
		return
	}

	author, err := h.authService.GetUserByID(r.Context(), authorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "Author not found")
			return
		}
		log.Printf("ERROR [ArticleHandler.Create] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Friendly pre-check; the unique index still decides under concurrency.
	if _, err := h.articleService.GetByTitle(r.Context(), req.Title); err == nil {
		writeError(w, http.StatusBadRequest, "Article with given title already exists")
		return
	} else if !errors.Is(err, domain.ErrArticleNotFound) {
		log.Printf("ERROR [ArticleHandler.Create] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	article, err := h.articleService.Add(r.Context(), author, req.Title, req.Description, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrTitleExists) {
			writeError(w, http.StatusBadRequest, "Article with given title already exists")
			return
		}
		log.Printf("ERROR [ArticleHandler.Create] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, article)
}

func (h *ArticleHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	articleID, err := parseArticleID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid article id")
		return
	}

	var req ArticleEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	article, err := h.articleService.GetByID(r.Context(), articleID)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		log.Printf("ERROR [ArticleHandler.Edit] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if article.Author.ID != userID {
		writeError(w, http.StatusBadRequest, "Only author can edit article")
		return
	}

	updated, err := h.articleService.Edit(r.Context(), articleID, service.ArticleUpdate{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrArticleNotFound):
			writeError(w, http.StatusNotFound, "Article not found")
		case errors.Is(err, domain.ErrTitleExists):
			writeError(w, http.StatusBadRequest, "Article with given title already exists")
		default:
			log.Printf("ERROR [ArticleHandler.Edit] %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.responseCache.InvalidateArticle(articleID)
	writeJSON(w, http.StatusOK, updated)
}

func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	articleID, err := parseArticleID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid article id")
		return
	}

	article, err := h.articleService.GetByID(r.Context(), articleID)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		log.Printf("ERROR [ArticleHandler.Delete] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if article.Author.ID != userID {
		writeError(w, http.StatusForbidden, "Only author can delete article")
		return
	}

	if err := h.articleService.Delete(r.Context(), articleID); err != nil {
		log.Printf("ERROR [ArticleHandler.Delete] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.responseCache.InvalidateArticle(articleID)
	writeJSON(w, http.StatusOK, ArticleDeleteResponse{ArticleID: articleID, Success: true})
}

func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	pageIndex, err := parsePageParam(query.Get("pageIndex"), service.DefaultPageIndex)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid pageIndex")
		return
	}
	pageSize, err := parsePageParam(query.Get("pageSize"), service.DefaultPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid pageSize")
		return
	}

	sort, err := parseSort(query.Get("sort"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.articleService.List(r.Context(), pageSize, pageIndex, sort)
	if err != nil {
		log.Printf("ERROR [ArticleHandler.List] %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	items := page.Items
	if items == nil {
		items = []*domain.Article{}
	}
	writeJSON(w, http.StatusOK, ArticleListResponse{Items: items, Total: page.Total})
}

func parseArticleID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parsePageParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("invalid page parameter %q", raw)
	}
	return value, nil
}

// sortColumns maps accepted sort field names to real columns. Anything else
// is rejected before it reaches the ORM.
var sortColumns = map[string]string{
	"id":          "id",
	"title":       "title",
	"description": "description",
	"content":     "content",
	"createdAt":   "created_at",
	"created_at":  "created_at",
	"updatedAt":   "updated_at",
	"updated_at":  "updated_at",
}

// parseSort parses ordered "field:direction" pairs, e.g.
// "title:asc,createdAt:desc". Direction defaults to ASC.
func parseSort(raw string) ([]domain.SortField, error) {
	if raw == "" {
		return nil, nil
	}

	var fields []domain.SortField
	for _, pair := range strings.Split(raw, ",") {
		name, direction, _ := strings.Cut(strings.TrimSpace(pair), ":")

		column, ok := sortColumns[name]
		if !ok {
			return nil, fmt.Errorf("unknown sort field %q", name)
		}

		dir := domain.SortAsc
		switch strings.ToUpper(strings.TrimSpace(direction)) {
		case "", "ASC":
		case "DESC":
			dir = domain.SortDesc
		default:
			return nil, fmt.Errorf("invalid sort direction %q", direction)
		}

		fields = append(fields, domain.SortField{Field: column, Direction: dir})
	}
	return fields, nil
}
