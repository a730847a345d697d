package controller

import (
	"context"
	"encoding/json"

	"ocean/internal/rpc"
	"ocean/internal/service"
)

type User struct {
	svc *service.UserService
}

func NewUser(svc *service.UserService) *User {
	return &User{svc: svc}
}

func (u *User) Execute(ctx context.Context, op string, params json.RawMessage) (any, error) {
	switch op {
	case "create":
		return u.create(ctx, params)
	case "auth":
		return u.auth(ctx, params)
	case "getOne":
		return u.getOne(ctx, params)
	case "update":
		return u.update(ctx, params)
	case "changePassword":
		return u.changePassword(ctx, params)
	default:
		return nil, rpc.MethodNotFound("user." + op)
	}
}

func (u *User) create(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		Name     *string `json:"name"`
		Code     string  `json:"code"`
		Password string  `json:"password"`
	}
	if err := bindParams("user.create", params, &req); err != nil {
		return nil, err
	}
	if req.Code == "" {
		return nil, rpc.BadParams("user.create")
	}

	id, err := u.svc.Create(ctx, req.Name, req.Code, req.Password)
	if err != nil {
		return nil, err
	}
	return map[string]any{"id": id}, nil
}

func (u *User) auth(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		ID       uint64 `json:"id"`
		Password string `json:"password"`
	}
	if err := bindParams("user.auth", params, &req); err != nil {
		return nil, err
	}
	if req.ID == 0 {
		return nil, rpc.BadParams("user.auth")
	}
	return u.svc.Auth(ctx, req.ID, req.Password)
}

func (u *User) getOne(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		Token string `json:"token"`
	}
	if err := bindParams("user.getOne", params, &req); err != nil {
		return nil, err
	}
	if req.Token == "" {
		return nil, rpc.BadParams("user.getOne")
	}
	return u.svc.GetByToken(ctx, req.Token)
}

func (u *User) update(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
		Code string `json:"code"`
	}
	if err := bindParams("user.update", params, &req); err != nil {
		return nil, err
	}
	if req.ID == 0 || req.Code == "" {
		return nil, rpc.BadParams("user.update")
	}
	return nil, u.svc.Update(ctx, req.ID, req.Name, req.Code)
}

func (u *User) changePassword(ctx context.Context, params json.RawMessage) (any, error) {
	var req struct {
		ID       uint64 `json:"id"`
		Password string `json:"password"`
	}
	if err := bindParams("user.changePassword", params, &req); err != nil {
		return nil, err
	}
	if req.ID == 0 || req.Password == "" {
		return nil, rpc.BadParams("user.changePassword")
	}

	token, err := u.svc.ChangePassword(ctx, req.ID, req.Password)
	if err != nil {
		return nil, err
	}
	return map[string]any{"token": token}, nil
}
