package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultPageSize = 20

// PageQuery holds the paging parameters every list endpoint accepts
type PageQuery struct {
	Page int `form:"page" binding:"min=0"`
	Size int `form:"size" binding:"omitempty,min=1,max=100"`
}

func (p PageQuery) size() int {
	if p.Size == 0 {
		return defaultPageSize
	}
	return p.Size
}

// Page is a paginated list response
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// paginate counts the rows matched by filter and loads the requested page
func paginate[T any](db *gorm.DB, q PageQuery, filter func(*gorm.DB) *gorm.DB, preload ...string) (*Page[T], error) {
	var total int64
	if err := db.Model(new(T)).Scopes(filter).Count(&total).Error; err != nil {
		return nil, err
	}

	size := q.size()
	tx := db.Scopes(filter)
	for _, assoc := range preload {
		tx = tx.Preload(assoc)
	}

	content := make([]T, 0, size)
	if err := tx.Order("id").Offset(q.Page * size).Limit(size).Find(&content).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Size:          size,
		Number:        q.Page,
		First:         q.Page == 0,
		Last:          q.Page >= totalPages-1,
	}, nil
}

// pathID parses the :id parameter, answering 400 when it is not a number
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondMessage(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// findOr404 loads the record with id, answering 404 with notFound when absent
func (s *Server) findOr404(c *gin.Context, tx *gorm.DB, id int64, model any, notFound string) bool {
	err := tx.Where("id = ?", id).First(model).Error
	if err == nil {
		return true
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondMessage(c, http.StatusNotFound, notFound)
		return false
	}
	s.internalError(c, err, "Failed to load record")
	return false
}

func (s *Server) internalError(c *gin.Context, err error, msg string) {
	s.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg(msg)
	respondMessage(c, http.StatusInternalServerError, "Internal server error")
}

// bindJSON decodes the request body, answering 400 on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// bindQuery decodes query parameters, answering 400 on failure
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return false
	}
	return true
}
