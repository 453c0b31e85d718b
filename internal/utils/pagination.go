package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SortableFields lists the keys list endpoints accept in ?sort=.
var SortableFields = map[string]bool{
	"createdAt":        true,
	"updatedAt":        true,
	"pickupDate":       true,
	"totalPrice":       true,
	"bookingReference": true,
}

type PaginationParams struct {
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"pageSize" form:"pageSize"`
	Sort     string `json:"sort" form:"sort"`
	Desc     bool   `json:"desc"`
}

type PaginationMeta struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"pageSize"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

// GetPaginationParams reads page, pageSize, sort and order from the query
// string. Malformed or out-of-range values fall back to defaults.
func GetPaginationParams(c *gin.Context) *PaginationParams {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	return NewPaginationParams(page, pageSize, c.Query("sort"), c.Query("order"))
}

func NewPaginationParams(page, pageSize int, sort, order string) *PaginationParams {
	p := &PaginationParams{
		Page:     max(page, 1),
		PageSize: pageSize,
		Sort:     sort,
		Desc:     order != "asc",
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	p.PageSize = min(max(p.PageSize, MinPageSize), MaxPageSize)
	if !SortableFields[p.Sort] {
		p.Sort = "createdAt"
	}
	return p
}

func (p *PaginationParams) Skip() int64 {
	return int64((p.Page - 1) * p.PageSize)
}

// FindOptions applies skip, limit and sort to a mongo Find.
func (p *PaginationParams) FindOptions() *options.FindOptions {
	direction := 1
	if p.Desc {
		direction = -1
	}
	return options.Find().
		SetSkip(p.Skip()).
		SetLimit(int64(p.PageSize)).
		SetSort(bson.D{{Key: p.Sort, Value: direction}})
}

func CreatePaginationMeta(params *PaginationParams, total int64) *PaginationMeta {
	size := int64(params.PageSize)
	totalPages := int((total + size - 1) / size)

	return &PaginationMeta{
		Page:        params.Page,
		PageSize:    params.PageSize,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}
