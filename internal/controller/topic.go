package controller

import (
	"context"
	"encoding/json"

	"ocean/internal/rpc"
	"ocean/internal/service"
)

type Topic struct {
	svc *service.TopicService
}

func NewTopic(svc *service.TopicService) *Topic {
	return &Topic{svc: svc}
}

func (t *Topic) Execute(ctx context.Context, op string, params json.RawMessage) (any, error) {
	switch op {
	case "create":
		return t.create(ctx, params)
	case "getOne":
		return t.getOne(ctx, params)
	case "getAll":
		return t.svc.GetAll(ctx)
	case "delete":
		return t.delete(ctx, params)
	default:
		return nil, rpc.MethodNotFound("topic." + op)
	}
}

func (t *Topic) create(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		UserID      uint64 `json:"user_id"`
	}
	if err := bindParams("topic.create", params, &req); err != nil {
		return nil, err
	}
	if req.Title == "" || req.UserID == 0 {
		return nil, rpc.BadParams("topic.create")
	}

	id, err := t.svc.Create(ctx, req.Title, req.Description, req.UserID)
	if err != nil {
		return nil, err
	}
	return map[string]any{"id": id}, nil
}

func (t *Topic) getOne(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		ID uint64 `json:"id"`
	}
	if err := bindParams("topic.getOne", params, &req); err != nil {
		return nil, err
	}
	if req.ID == 0 {
		return nil, rpc.BadParams("topic.getOne")
	}
	return t.svc.GetOne(ctx, req.ID)
}

func (t *Topic) delete(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		ID []uint64 `json:"id"`
	}
	if err := bindParams("topic.delete", params, &req); err != nil {
		return nil, err
	}
	if len(req.ID) == 0 {
		return nil, rpc.BadParams("topic.delete")
	}
	return nil, t.svc.Delete(ctx, req.ID)
}
