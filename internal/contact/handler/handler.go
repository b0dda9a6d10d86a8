package handler

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/phonebook/phonebook/backend/internal/contact/service"
)

// now is swapped by tests.
var now = time.Now

const (
	infoDateLayout = "Mon Jan 02 2006"
	infoTimeLayout = "15:04:05 GMT-0700 (MST)"
)

func RegisterContactRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/api/persons", func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.List())
	})

	r.GET("/api/persons/:id", func(c *gin.Context) {
		id, ok := parseID(c.Param("id"))
		if !ok {
			c.Status(http.StatusNotFound)
			return
		}
		p, err := svc.Get(id)
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.DELETE("/api/persons/:id", func(c *gin.Context) {
		if id, ok := parseID(c.Param("id")); ok {
			svc.Delete(id)
		}
		c.Status(http.StatusNoContent)
	})

	r.POST("/api/persons", func(c *gin.Context) {
		var req struct {
			Name   string `json:"name"`
			Number string `json:"number"`
		}
		// anything that is not a JSON body is treated as an empty object
		if c.ContentType() == binding.MIMEJSON {
			if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		p, err := svc.Create(req.Name, req.Number)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, p)
		case errors.Is(err, service.ErrNameMissing),
			errors.Is(err, service.ErrNumberMissing),
			errors.Is(err, service.ErrNameNotUnique):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	})

	r.GET("/info", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, infoPage(svc.Count(), now()))
	})
}

func infoPage(entries int, t time.Time) string {
	return fmt.Sprintf("<div>Phonebook has info for %d</div>\n<div>%s %s</div>\n",
		entries, t.Format(infoDateLayout), t.Format(infoTimeLayout))
}

// parseID reads a path id the way a numeric cast would: "2", " 2 ", "2.0"
// and "2e0" all name contact 2. Non-numeric or fractional input names no
// contact.
func parseID(raw string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > 1<<53 || f < -(1<<53) {
		return 0, false
	}
	return int(f), true
}
