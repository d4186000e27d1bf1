package main

import (
	"context"
	"strconv"
	"time"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/logging"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/metrics"
	v1 "github.com/PaulBabatuyi/liveChat-gRPC/proto/chat/v1"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var (
	jsonOut = protojson.MarshalOptions{EmitUnpopulated: true}
	jsonIn  = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// httpAPI exposes the chat service over HTTP using the protobuf JSON mapping, plus the /ws live
// query endpoint and operational health checks. Handlers delegate to Server so both
// transports share validation and error mapping.
type httpAPI struct {
	srv   *Server
	ready func(ctx context.Context) error
}

func newHTTPApp(srv *Server, ready func(ctx context.Context) error) *fiber.App {
	api := &httpAPI{srv: srv, ready: ready}

	app := fiber.New(fiber.Config{
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           30 * time.Second,
		BodyLimit:             1 * 1024 * 1024, // 1MB
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestLogger())

	app.Get("/health", api.health)
	app.Get("/ready", api.readiness)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	app.Get("/ws", api.upgrade)

	r := app.Group("/api/v1")
	r.Post("/messages", api.sendMessage)
	r.Get("/messages", api.listMessages)
	r.Get("/messages/count", api.countMessages)

	r.Post("/users", api.resolveUser)
	// Static segments must precede /users/:id.
	r.Get("/users/stats", api.userStats)
	r.Get("/users/active", api.activeUsers)
	r.Get("/users/active/count", api.activeUserCount)
	r.Get("/users/:id", api.getUser)
	r.Get("/users/:id/messages", api.userMessages)
	r.Get("/users/:id/messages/count", api.userMessageCount)
	r.Post("/users/:id/activity", api.touchActivity)

	return app
}

// requestLogger tags each request with an id and records it in the access
// log and metrics.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)

		timer := metrics.NewTimer()
		err := c.Next()

		code := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			} else {
				code = fiber.StatusInternalServerError
			}
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(code)).Inc()

		logger := logging.WithRequestID(id)
		ev := logger.Info()
		if code >= fiber.StatusInternalServerError {
			ev = logger.Error()
		} else if code >= fiber.StatusBadRequest {
			ev = logger.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", code).
			Dur("duration", timer.Duration()).
			Msg("http request")
		return err
	}
}

func (a *httpAPI) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (a *httpAPI) readiness(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := a.ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "not ready", "error": "store unreachable"})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

// fail writes err, already mapped to a gRPC status, as an HTTP error body.
func fail(c *fiber.Ctx, err error) error {
	st := status.Convert(err)
	code := fiber.StatusInternalServerError
	switch st.Code() {
	case codes.InvalidArgument:
		code = fiber.StatusBadRequest
	case codes.NotFound:
		code = fiber.StatusNotFound
	case codes.Canceled, codes.DeadlineExceeded:
		code = fiber.StatusGatewayTimeout
	}
	return c.Status(code).JSON(fiber.Map{"error": st.Message()})
}

// writeProto renders m with the protobuf JSON mapping.
func writeProto(c *fiber.Ctx, code int, m proto.Message) error {
	raw, err := jsonOut.Marshal(m)
	if err != nil {
		return err
	}
	c.Status(code).Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}

func readProto(c *fiber.Ctx, m proto.Message) error {
	return jsonIn.Unmarshal(c.Body(), m)
}

func queryLimit(c *fiber.Ctx) int64 {
	n, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	return n
}

func (a *httpAPI) sendMessage(c *fiber.Ctx) error {
	req := &v1.SendMessageRequest{}
	if err := readProto(c, req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if _, err := a.srv.SendMessage(c.UserContext(), req); err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// GET /api/v1/messages?limit=50&with_users=true
func (a *httpAPI) listMessages(c *fiber.Ctx) error {
	if c.QueryBool("with_users") {
		resp, err := a.srv.ListRecentMessagesWithUsers(c.UserContext(), &v1.ListRecentMessagesWithUsersRequest{Limit: queryLimit(c)})
		if err != nil {
			return fail(c, err)
		}
		return writeProto(c, fiber.StatusOK, resp)
	}
	resp, err := a.srv.ListRecentMessages(c.UserContext(), &v1.ListRecentMessagesRequest{Limit: queryLimit(c)})
	if err != nil {
		return fail(c, err)
	}
	return writeProto(c, fiber.StatusOK, resp)
}

func (a *httpAPI) countMessages(c *fiber.Ctx) error {
	resp, err := a.srv.CountAllMessages(c.UserContext(), &v1.CountAllMessagesRequest{})
	if err != nil {
		return fail(c, err)
	}
	return writeProto(c, fiber.StatusOK, resp)
}

func (a *httpAPI) resolveUser(c *fiber.Ctx) error {
	req := &v1.ResolveOrCreateUserRequest{}
	if err := readProto(c, req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	resp, err := a.srv.ResolveOrCreateUser(c.UserContext(), req)
	if err != nil {
		return fail(c, err)
	}
	return writeProto(c, fiber.StatusOK, resp)
}

func (a *httpAPI) userStats(c *fiber.Ctx) error {
	resp, err := a.srv.ListUsersWithMessageCounts(c.UserContext(), &v1.ListUsersWithMessageCountsRequest{})
	if err != nil {
		return fail(c, err)
	}
	return writeProto(c, fiber.StatusOK, resp)
}

func (a *httpAPI) activeUsers(c *fiber.Ctx) error {
	resp, err := a.srv.ListRecentActiveUsers(c.UserContext(), &v1.ListRecentActiveUsersRequest{Limit: queryLimit(c)})
	if err != nil {
		return fail(c, err)
	}
	return writeProto(c, fiber.StatusOK, resp)
}

func (a *httpAPI) activeUserCount(c *fiber.Ctx) error {
	resp, err := a.srv.CountActiveUsers(c.UserContext(), &v1.CountActiveUsersRequest{})
	if err != nil {
		return fail(c, err)
	}
	return writeProto(c, fiber.StatusOK, resp)
}

func (a *httpAPI) getUser(c *fiber.Ctx) error {
	resp, err := a.srv.GetUser(c.UserContext(), &v1.GetUserRequest{UserId: c.Params("id")})
	if err != nil {
		return fail(c, err)
	}
	if !resp.GetFound() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	return writeProto(c, fiber.StatusOK, resp.GetUser())
}

func (a *httpAPI) userMessages(c *fiber.Ctx) error {
	resp, err := a.srv.ListMessagesForUser(c.UserContext(), &v1.ListMessagesForUserRequest{UserId: c.Params("id"), Limit: queryLimit(c)})
	if err != nil {
		return fail(c, err)
	}
	return writeProto(c, fiber.StatusOK, resp)
}

func (a *httpAPI) userMessageCount(c *fiber.Ctx) error {
	resp, err := a.srv.CountMessagesForUser(c.UserContext(), &v1.CountMessagesForUserRequest{UserId: c.Params("id")})
	if err != nil {
		return fail(c, err)
	}
	return writeProto(c, fiber.StatusOK, resp)
}

func (a *httpAPI) touchActivity(c *fiber.Ctx) error {
	if _, err := a.srv.TouchActivity(c.UserContext(), &v1.TouchActivityRequest{UserId: c.Params("id")}); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
