package ui

import (
	"errors"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/prittamravi/clines/internal/db"
	"github.com/prittamravi/clines/internal/scan"
	"github.com/prittamravi/clines/internal/size"
)

type reportJSON struct {
	Root       string               `json:"root"`
	TotalLines int                  `json:"total_lines"`
	TotalFiles int                  `json:"total_files"`
	Category   string               `json:"category"`
	Title      string               `json:"title"`
	Extensions []scan.ExtensionStat `json:"extensions"`
}

type runDetailJSON struct {
	db.Run
	Extensions []db.RunExtension `json:"extensions"`
}

type indexView struct {
	Root       string
	Lines      string
	Files      string
	Title      string
	Color      string
	Extensions []scan.ExtensionStat
	History    []db.Run
}

const indexHistoryLimit = 10

func (s *Server) runScan(c *gin.Context) (*scan.Result, bool) {
	cfg := s.svc.LoadConfig(s.opts.ConfigPath, s.opts.Variant)
	result, err := s.svc.Scan(c.Request.Context(), s.opts.Root, cfg, s.opts.Variant)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return result, true
}

func (s *Server) handleIndex(c *gin.Context) {
	result, ok := s.runScan(c)
	if !ok {
		return
	}
	category := size.Label(result.TotalLines)
	view := indexView{
		Root:       s.opts.Root,
		Lines:      humanize.Comma(int64(result.TotalLines)),
		Files:      humanize.Comma(int64(result.TotalFiles)),
		Title:      category.Title(),
		Color:      category.Color(),
		Extensions: result.Sorted(),
	}
	if s.svc.DB != nil {
		if runs, err := s.svc.DB.ListRuns(indexHistoryLimit); err == nil {
			view.History = runs
		}
	}
	c.HTML(http.StatusOK, "index.html", view)
}

func (s *Server) handleAPIReport(c *gin.Context) {
	result, ok := s.runScan(c)
	if !ok {
		return
	}
	category := size.Label(result.TotalLines)
	c.JSON(http.StatusOK, reportJSON{
		Root:       result.Root,
		TotalLines: result.TotalLines,
		TotalFiles: result.TotalFiles,
		Category:   category.String(),
		Title:      category.Title(),
		Extensions: result.Sorted(),
	})
}

func (s *Server) handleAPIHistory(c *gin.Context) {
	if s.svc.DB == nil {
		c.JSON(http.StatusOK, []db.Run{})
		return
	}
	runs, err := s.svc.DB.ListRuns(0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, runs)
}

func (s *Server) handleAPIRun(c *gin.Context) {
	if s.svc.DB == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no history recorded"})
		return
	}
	id := c.Param("id")
	run, err := s.svc.DB.GetRun(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	exts, err := s.svc.DB.GetRunExtensions(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, runDetailJSON{Run: *run, Extensions: exts})
}
