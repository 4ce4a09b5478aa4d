package server

import (
	"context"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/caportal/prorate-calculator/internal/domain"
	applog "github.com/caportal/prorate-calculator/internal/log"
	"github.com/caportal/prorate-calculator/internal/links"
	"github.com/caportal/prorate-calculator/internal/microlearning"
	"github.com/caportal/prorate-calculator/internal/output"
)

type errorBody struct {
	Error output.ErrorView `json:"error"`
}

func (s *Server) handleProratePost(ctx *fasthttp.RequestCtx) {
	var req domain.ProrationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "BadRequest", "invalid request body: "+err.Error())
		return
	}
	s.prorate(ctx, req)
}

func (s *Server) handleProrateGet(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	s.prorate(ctx, domain.ProrationRequest{
		TotalMonthlyCost: domain.Amount(args.Peek("amount")),
		StartDate:        string(args.Peek("start")),
		CalculationDate:  string(args.Peek("date")),
	})
}

func (s *Server) prorate(ctx *fasthttp.RequestCtx, req domain.ProrationRequest) {
	result, err := s.engine.CalculateRequest(req)
	s.metrics.ObserveCalculation(err)
	if err != nil {
		s.logger.Debug("calculation rejected", applog.FieldErrorKind, string(domain.KindOf(err)), applog.FieldError, err)
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, errorBody{Error: *output.NewErrorView(err)})
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, output.NewResultView(result))
}

// handleBatch calculates a JSON batch and renders it with the formatter named
// by ?format= (json by default).
func (s *Server) handleBatch(ctx *fasthttp.RequestCtx) {
	var batch domain.Batch
	if err := json.Unmarshal(ctx.PostBody(), &batch); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "BadRequest", "invalid request body: "+err.Error())
		return
	}
	if err := s.parser.ValidateBatch(&batch); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "BadRequest", err.Error())
		return
	}

	format := string(ctx.QueryArgs().Peek("format"))
	if format == "" {
		format = "json"
	}
	f, err := output.ResolveFormatter(format)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "BadRequest", err.Error())
		return
	}

	runCtx, cancel := s.requestContext()
	defer cancel()
	report, err := s.engine.RunBatch(runCtx, &batch, s.cfg.BatchWorkers)
	if err != nil {
		writeError(ctx, fasthttp.StatusServiceUnavailable, "Cancelled", err.Error())
		return
	}
	s.metrics.ObserveReport(report)

	data, err := f.Format(report)
	if err != nil {
		s.logger.Error("format failed", applog.FieldFormat, f.Name(), applog.FieldError, err)
		writeError(ctx, fasthttp.StatusInternalServerError, "InternalError", "failed to render report")
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(contentType(f.Extension()))
	ctx.SetBody(data)
}

func (s *Server) handleLinks(ctx *fasthttp.RequestCtx) {
	if slug := string(ctx.QueryArgs().Peek("slug")); slug != "" {
		l, ok := links.Find(slug)
		if !ok {
			writeError(ctx, fasthttp.StatusNotFound, "NotFound", "no link "+slug)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, links.NewView(l))
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, links.Views())
}

// handleMicrolearning serves the whole guide, one section with ?section=, or a
// filtered table of contents with ?q=.
func (s *Server) handleMicrolearning(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	if slug := string(args.Peek("section")); slug != "" {
		sec, ok := microlearning.Find(slug)
		if !ok {
			writeError(ctx, fasthttp.StatusNotFound, "NotFound", "no microlearning section "+slug)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, microlearning.NewSectionView(sec))
		return
	}
	if args.Has("q") {
		writeJSON(ctx, fasthttp.StatusOK, microlearning.Search(string(args.Peek("q"))))
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, microlearning.NewView())
}

// requestContext bounds batch work by the configured read timeout.
func (s *Server) requestContext() (context.Context, context.CancelFunc) {
	if s.cfg.ReadTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.cfg.ReadTimeout)
}

func contentType(ext string) string {
	switch strings.ToLower(ext) {
	case "json":
		return "application/json"
	case "csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	case "pdf":
		return "application/pdf"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/plain; charset=utf-8"
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		ctx.Error("failed to encode response", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, kind, message string) {
	writeJSON(ctx, status, errorBody{Error: output.ErrorView{Kind: kind, Message: message}})
}

func methodNotAllowed(ctx *fasthttp.RequestCtx, allow string) {
	ctx.Response.Header.Set("Allow", allow)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "MethodNotAllowed", "method "+string(ctx.Method())+" not allowed")
}
