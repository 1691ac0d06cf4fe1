// Package fakehub serves a stand-in for the user search endpoint so the
// TUI can be developed and tested without touching the real API.
package fakehub

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"ghsearch/internal/domain"
)

// Options tunes the fake endpoint
type Options struct {
	Latency     time.Duration // applied before every search response
	FailStatus  int           // non-zero forces every search to fail with this status
	FailMessage string        // message field of the forced failure
	Quiet       bool          // disables request logging
}

type fixture struct {
	Users []domain.User `yaml:"users"`
}

// LoadUsers reads a YAML fixture of the form `users: [{id, login, ...}]`
func LoadUsers(path string) ([]domain.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return ParseUsers(data)
}

// ParseUsers decodes a YAML fixture already in memory
func ParseUsers(data []byte) ([]domain.User, error) {
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return f.Users, nil
}

// NewRouter builds the gin engine
func NewRouter(users []domain.User, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if !opts.Quiet {
		r.Use(gin.Logger())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	h := &searchHandler{users: users, opts: opts}
	r.GET("/search/users", h.Search)

	return r
}

type searchHandler struct {
	users []domain.User
	opts  Options
}

func (h *searchHandler) Search(c *gin.Context) {
	if h.opts.Latency > 0 {
		select {
		case <-time.After(h.opts.Latency):
		case <-c.Request.Context().Done():
			return
		}
	}

	if h.opts.FailStatus != 0 {
		c.JSON(h.opts.FailStatus, gin.H{"message": h.opts.FailMessage})
		return
	}

	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if q == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Validation Failed"})
		return
	}

	items := make([]domain.User, 0)
	for _, u := range h.users {
		if strings.Contains(strings.ToLower(u.Login), q) {
			items = append(items, u)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_count":        len(items),
		"incomplete_results": false,
		"items":              items,
	})
}
