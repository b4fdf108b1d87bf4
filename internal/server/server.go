// Package server exposes pattern matching over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DrJosh9000/extglob"
)

// Server handles requests using its own pattern cache.
type Server struct {
	cache  *extglob.Cache
	logger *zap.Logger
}

// New returns a server that compiles patterns through cache.
func New(cache *extglob.Cache, logger *zap.Logger) *Server {
	return &Server{cache: cache, logger: logger}
}

// NewRouter builds a Gin engine with all routes.
func (s *Server) NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware(), s.logMiddleware())

	r.GET("/ping", s.ping)
	r.POST("/match", s.match)
	r.DELETE("/cache", s.clearCache)
	return r
}

func (s *Server) ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "cached": s.cache.Len()})
}

func (s *Server) match(ctx *gin.Context) {
	var req MatchRequest
	if err := json.NewDecoder(ctx.Request.Body).Decode(&req); err != nil {
		respondError(ctx, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
		return
	}

	p := s.cache.Parse(req.Pattern,
		extglob.CaseSensitive(!req.Options.CaseInsensitive),
		extglob.MatchLeadingDot(req.Options.Dot),
		extglob.Unixify(req.Options.Unixify),
		extglob.EnableGlobStar(!req.Options.NoGlobStar),
	)
	matches, err := p.Filter(ctx.Request.Context(), req.Candidates)
	if err != nil {
		respondError(ctx, http.StatusServiceUnavailable, ErrorCodeCancelled, err.Error())
		return
	}

	resp := MatchResponse{
		Pattern: req.Pattern,
		Matches: make([]string, 0, len(matches)),
		Results: make([]bool, len(req.Candidates)),
	}
	resp.Matches = append(resp.Matches, matches...)
	// Filter preserves order, so walk both lists together.
	k := 0
	for i, c := range req.Candidates {
		if k < len(matches) && matches[k] == c {
			resp.Results[i] = true
			k++
		}
	}
	ctx.JSON(http.StatusOK, resp)
}

func (s *Server) clearCache(ctx *gin.Context) {
	s.cache.Clear()
	s.logger.Info("pattern cache cleared", zap.String("request_id", ctx.GetString(RequestIDHeader)))
	ctx.Status(http.StatusNoContent)
}

func respondError(ctx *gin.Context, status int, code ErrorCode, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Code: code, Message: message})
}

// requestIDMiddleware propagates the client's request ID, or assigns one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		ctx.Set(RequestIDHeader, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

func (s *Server) logMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		s.logger.Info("request",
			zap.String("request_id", ctx.GetString(RequestIDHeader)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
