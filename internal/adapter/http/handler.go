// Package httpadapter exposes the contract board to the game client over
// HTTP. The mod process polls the board and pushes gameplay events here.
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bountyverse/internal/app/board"
	"bountyverse/internal/app/ports"
	"bountyverse/internal/app/savegame"
	"bountyverse/internal/domain/bounty"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// RosterSink receives spawned-squad reports from the game client.
type RosterSink interface {
	SetRoster(roster bounty.SquadRoster)
}

type Handler struct {
	Board   *board.Board
	Save    savegame.UseCase
	Rosters RosterSink
	KPI     kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	b := s.Group("/api/board")
	b.GET("/available", h.available)
	b.GET("/active", h.active)
	b.GET("/completed", h.completed)
	b.GET("/contracts/:id", h.contract)
	b.GET("/contracts/:id/summary", h.contractSummary)
	b.POST("/contracts/:id/accept", h.accept)
	b.POST("/contracts/:id/reject", h.reject)

	sess := s.Group("/api/session")
	sess.POST("/start", h.sessionStart)
	sess.POST("/events", h.sessionEvent)
	sess.POST("/rosters", h.sessionRoster)
	sess.POST("/area-exit", h.areaExit)

	s.GET("/api/bank", h.bank)
	s.GET("/api/factions", h.factions)
	s.POST("/api/clock/advance", h.clockAdvance)
	s.POST("/api/save", h.save)
	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) bank(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{
		"bank":    h.Board.BankSnapshot(),
		"summary": h.Board.BankSummary(0),
	})
}

func (h Handler) factions(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{
		"factions": h.Board.FactionSnapshot(),
		"summary":  h.Board.FactionSummary(),
	})
}

type clockAdvanceRequest struct {
	RealSeconds float64 `json:"real_seconds"`
}

// clockAdvance is how the game client drives in-game time: it reports real
// elapsed seconds and the clock scales them by its multiplier.
func (h Handler) clockAdvance(c context.Context, ctx *app.RequestContext) {
	var body clockAdvanceRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.RealSeconds <= 0 {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_duration", "real_seconds must be positive")
		return
	}
	now := h.Board.AdvanceClock(time.Duration(body.RealSeconds * float64(time.Second)))
	if err := h.Save.Save(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"game_time": now.Format(time.RFC3339Nano)})
}

func (h Handler) available(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"contracts": h.Board.Available()})
}

func (h Handler) active(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"contracts": h.Board.Active()})
}

func (h Handler) completed(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"contracts": h.Board.Completed()})
}

func (h Handler) contract(_ context.Context, ctx *app.RequestContext) {
	id := string(ctx.Param("id"))
	c, ok := h.Board.Find(id)
	if !ok {
		writeError(ctx, board.ErrContractNotFound)
		return
	}
	ctx.JSON(consts.StatusOK, c)
}

func (h Handler) contractSummary(_ context.Context, ctx *app.RequestContext) {
	summary, err := h.Board.ContractSummary(string(ctx.Param("id")))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"summary": summary})
}

func (h Handler) accept(c context.Context, ctx *app.RequestContext) {
	id := string(ctx.Param("id"))
	if err := h.Board.Accept(id); err != nil {
		writeError(ctx, err)
		return
	}
	if err := h.Save.Save(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"contract_id": id, "accepted": true})
}

func (h Handler) reject(c context.Context, ctx *app.RequestContext) {
	id := string(ctx.Param("id"))
	if err := h.Board.Reject(id); err != nil {
		writeError(ctx, err)
		return
	}
	if err := h.Save.Save(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"contract_id": id, "rejected": true})
}

func (h Handler) sessionStart(_ context.Context, ctx *app.RequestContext) {
	h.Board.StartSession()
	ctx.JSON(consts.StatusOK, map[string]any{"started": true})
}

func (h Handler) sessionEvent(c context.Context, ctx *app.RequestContext) {
	var event bounty.SessionEvent
	if err := decodeJSON(ctx, &event); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if event.Kind == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_kind", "event kind is required")
		return
	}
	if err := h.Board.RecordEvent(c, event); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"recorded": true})
}

func (h Handler) sessionRoster(_ context.Context, ctx *app.RequestContext) {
	var roster bounty.SquadRoster
	if err := decodeJSON(ctx, &roster); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if roster.ContractID == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_contract_id", "contract_id is required")
		return
	}
	h.Rosters.SetRoster(roster)
	ctx.JSON(consts.StatusOK, map[string]any{"contract_id": roster.ContractID, "registered": true})
}

func (h Handler) areaExit(c context.Context, ctx *app.RequestContext) {
	resolved := h.Board.FinalizeAreaExit(c)
	if err := h.Save.Save(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"resolved": resolved})
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	start := time.Now()
	if err := h.Save.Save(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"saved":       true,
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, board.ErrContractNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "contract_not_found", err.Error())
	case errors.Is(err, board.ErrNoSession):
		writeErrorBody(ctx, consts.StatusConflict, "no_active_session", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, ports.ErrNotReady):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "not_ready", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
