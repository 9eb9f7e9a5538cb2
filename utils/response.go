// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError sends the uniform error envelope. Every handler-level
// failure funnels through here.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// Pagination mirrors the list-endpoint pagination block.
type Pagination struct {
	TotalPages   int  `json:"totalPages"`
	CurrentPage  int  `json:"currentPage"`
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
}

func NewPagination(count int64, page, limit int) *Pagination {
	if limit <= 0 {
		return nil
	}
	totalPages := int((count + int64(limit) - 1) / int64(limit))
	p := &Pagination{TotalPages: totalPages, CurrentPage: page}
	if page > 1 {
		prev := page - 1
		p.PreviousPage = &prev
	}
	if page < totalPages {
		next := page + 1
		p.NextPage = &next
	}
	return p
}
