package controller

import (
	"context"
	"encoding/json"

	"ocean/internal/model"
	"ocean/internal/rpc"
	"ocean/internal/service"

	"gorm.io/datatypes"
)

type Mandela struct {
	svc *service.MandelaService
}

func NewMandela(svc *service.MandelaService) *Mandela {
	return &Mandela{svc: svc}
}

func (m *Mandela) Execute(ctx context.Context, op string, params json.RawMessage) (any, error) {
	switch op {
	case "create":
		return m.create(ctx, params)
	case "update":
		return m.update(ctx, params)
	case "getOne":
		return m.getOne(ctx, params)
	case "getAll":
		return m.getAll(ctx, params)
	case "delete":
		return m.delete(ctx, params)
	case "mark":
		return m.mark(ctx, params)
	case "vote":
		return m.vote(ctx, params)
	default:
		return nil, rpc.MethodNotFound("mandela." + op)
	}
}

// mandelaPayload is the shared create/update parameter shape. The three
// collections are raw JSON passed through to the store.
type mandelaPayload struct {
	ID          uint64          `json:"id"`
	TitleMode   int             `json:"title_mode"`
	Title       string          `json:"title"`
	What        string          `json:"what"`
	Before      string          `json:"before"`
	After       string          `json:"after"`
	Description string          `json:"description"`
	Images      json.RawMessage `json:"images"`
	Videos      json.RawMessage `json:"videos"`
	Links       json.RawMessage `json:"links"`
	UserID      uint64          `json:"user_id"`
	Categories  []int32         `json:"categories"`
}

func (p *mandelaPayload) valid() bool {
	return p.Title != "" && p.UserID != 0 &&
		len(p.Images) > 0 && len(p.Videos) > 0 && len(p.Links) > 0
}

func (p *mandelaPayload) toModel() *model.Mandela {
	return &model.Mandela{
		ID:          p.ID,
		TitleMode:   p.TitleMode,
		Title:       p.Title,
		What:        p.What,
		Before:      p.Before,
		After:       p.After,
		Description: p.Description,
		Images:      datatypes.JSON(p.Images),
		Videos:      datatypes.JSON(p.Videos),
		Links:       datatypes.JSON(p.Links),
		UserID:      p.UserID,
	}
}

func (m *Mandela) create(ctx context.Context, params json.RawMessage) (any, error) {
	var req mandelaPayload
	if err := bindParams("mandela.create", params, &req); err != nil {
		return nil, err
	}
	if !req.valid() {
		return nil, rpc.BadParams("mandela.create")
	}
	req.ID = 0

	id, err := m.svc.Create(ctx, req.toModel(), req.Categories)
	if err != nil {
		return nil, err
	}
	return map[string]any{"id": id}, nil
}

func (m *Mandela) update(ctx context.Context, params json.RawMessage) (any, error) {
	var req mandelaPayload
	if err := bindParams("mandela.update", params, &req); err != nil {
		return nil, err
	}
	if req.ID == 0 || !req.valid() {
		return nil, rpc.BadParams("mandela.update")
	}
	return nil, m.svc.Update(ctx, req.toModel(), req.Categories)
}

func (m *Mandela) getOne(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		ID     uint64  `json:"id"`
		UserID *uint64 `json:"user_id"`
	}
	if err := bindParams("mandela.getOne", params, &req); err != nil {
		return nil, err
	}
	if req.ID == 0 {
		return nil, rpc.BadParams("mandela.getOne")
	}
	return m.svc.GetOne(ctx, req.ID, req.UserID)
}

func (m *Mandela) getAll(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		Offset int     `json:"offset"`
		Limit  int     `json:"limit"`
		UserID *uint64 `json:"user_id"`
		Filter string  `json:"filter"`
	}
	if err := bindParams("mandela.getAll", params, &req); err != nil {
		return nil, err
	}
	if req.Limit <= 0 || req.Offset < 0 {
		return nil, rpc.BadParams("mandela.getAll")
	}
	return m.svc.GetAll(ctx, req.Offset, req.Limit, req.UserID, service.Filter(req.Filter))
}

func (m *Mandela) delete(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		ID []uint64 `json:"id"`
	}
	if err := bindParams("mandela.delete", params, &req); err != nil {
		return nil, err
	}
	if len(req.ID) == 0 {
		return nil, rpc.BadParams("mandela.delete")
	}
	return nil, m.svc.Delete(ctx, req.ID)
}

func (m *Mandela) mark(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		ID     uint64 `json:"id"`
		UserID uint64 `json:"user_id"`
	}
	if err := bindParams("mandela.mark", params, &req); err != nil {
		return nil, err
	}
	if req.ID == 0 || req.UserID == 0 {
		return nil, rpc.BadParams("mandela.mark")
	}
	return nil, m.svc.Mark(ctx, req.ID, req.UserID)
}

func (m *Mandela) vote(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		ID     uint64 `json:"id"`
		UserID uint64 `json:"user_id"`
		Vote   *int8  `json:"vote"`
	}
	if err := bindParams("mandela.vote", params, &req); err != nil {
		return nil, err
	}
	if req.ID == 0 || req.UserID == 0 || req.Vote == nil {
		return nil, rpc.BadParams("mandela.vote")
	}

	tally, err := m.svc.Vote(ctx, req.ID, req.UserID, *req.Vote)
	if err != nil {
		return nil, err
	}
	return map[string]any{"votes": tally}, nil
}
