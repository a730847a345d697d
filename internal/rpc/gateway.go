package rpc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Controller executes one operation of a namespace. Params is the raw params
// value from the envelope; each operation deserializes its own shape.
type Controller interface {
	Execute(ctx context.Context, op string, params json.RawMessage) (any, error)
}

// Gateway owns the request/response protocol contract: it parses the inbound
// envelope, resolves the namespace controller, and serializes the outbound
// envelope. All handler failures funnel through AsError here.
type Gateway struct {
	controllers map[string]Controller
	log         zerolog.Logger
}

func NewGateway(log zerolog.Logger) *Gateway {
	return &Gateway{
		controllers: make(map[string]Controller),
		log:         log,
	}
}

func (g *Gateway) Register(namespace string, c Controller) {
	g.controllers[namespace] = c
}

// Handle serves POST /api. Anything that fails before the envelope is parsed
// gets the fixed plain-text rejection; after that, failures travel inside the
// envelope.
func (g *Gateway) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		BadRequest(c)
		return
	}

	g.log.Info().Str("body", string(body)).Msg("rpc request")

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		BadRequest(c)
		return
	}

	resp := g.exec(c.Request.Context(), req)

	out, err := json.Marshal(resp)
	if err != nil {
		resp = Response{ID: req.ID, Method: req.Method, Error: NewError(CodeInternal, "internal error")}
		out, _ = json.Marshal(resp)
	}

	g.log.Info().Str("body", string(out)).Msg("rpc response")

	c.Header("Access-Control-Allow-Origin", "*")
	c.Data(http.StatusOK, "application/json", out)
}

func (g *Gateway) exec(ctx context.Context, req Request) Response {
	resp := Response{ID: req.ID, Method: req.Method}

	namespace, op, ok := strings.Cut(req.Method, ".")
	if !ok {
		resp.Error = MethodNotFound(req.Method)
		return resp
	}

	ctrl, ok := g.controllers[namespace]
	if !ok {
		resp.Error = MethodNotFound(req.Method)
		return resp
	}

	result, err := ctrl.Execute(ctx, op, req.Params)
	if err != nil {
		resp.Error = AsError(err)
		return resp
	}
	resp.Result = result
	return resp
}

// BadRequest is the fixed pre-dispatch rejection used for wrong verb, wrong
// path and unparsable bodies.
func BadRequest(c *gin.Context) {
	c.String(http.StatusBadRequest, "Bad request")
}
