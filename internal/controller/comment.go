package controller

import (
	"context"
	"encoding/json"

	"ocean/internal/rpc"
	"ocean/internal/service"
)

type Comment struct {
	svc *service.CommentService
}

func NewComment(svc *service.CommentService) *Comment {
	return &Comment{svc: svc}
}

func (c *Comment) Execute(ctx context.Context, op string, params json.RawMessage) (any, error) {
	switch op {
	case "create":
		return c.create(ctx, params)
	case "getAll":
		return c.getAll(ctx, params)
	case "update":
		return c.update(ctx, params)
	case "delete":
		return c.delete(ctx, params)
	default:
		return nil, rpc.MethodNotFound("comment." + op)
	}
}

func (c *Comment) create(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		MandelaID uint64 `json:"mandela_id"`
		UserID    uint64 `json:"user_id"`
		Message   string `json:"message"`
	}
	if err := bindParams("comment.create", params, &req); err != nil {
		return nil, err
	}
	if req.MandelaID == 0 || req.UserID == 0 || req.Message == "" {
		return nil, rpc.BadParams("comment.create")
	}
	return nil, c.svc.Create(ctx, req.MandelaID, req.UserID, req.Message)
}

func (c *Comment) getAll(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		MandelaID uint64 `json:"mandela_id"`
		Offset    int    `json:"offset"`
		Limit     int    `json:"limit"`
	}
	if err := bindParams("comment.getAll", params, &req); err != nil {
		return nil, err
	}
	if req.MandelaID == 0 || req.Limit <= 0 {
		return nil, rpc.BadParams("comment.getAll")
	}
	return c.svc.GetAll(ctx, req.MandelaID, req.Offset, req.Limit)
}

func (c *Comment) update(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		ID      uint64 `json:"id"`
		Message string `json:"message"`
	}
	if err := bindParams("comment.update", params, &req); err != nil {
		return nil, err
	}
	if req.ID == 0 || req.Message == "" {
		return nil, rpc.BadParams("comment.update")
	}
	return nil, c.svc.Update(ctx, req.ID, req.Message)
}

func (c *Comment) delete(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		ID []uint64 `json:"id"`
	}
	if err := bindParams("comment.delete", params, &req); err != nil {
		return nil, err
	}
	if len(req.ID) == 0 {
		return nil, rpc.BadParams("comment.delete")
	}
	return nil, c.svc.Delete(ctx, req.ID)
}
