package api

import (
	"bufio"
	"fmt"
	"time"

	"github.com/pixelnegociosdigitais/datascope/pkg/internal/http/exts"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/models"
	"github.com/pixelnegociosdigitais/datascope/pkg/internal/services"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
)

func listChatMessages(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	companyId, _ := c.ParamsInt("companyId")
	take := c.QueryInt("take", 50)
	offset := c.QueryInt("offset", 0)

	if _, err := services.EnsureMemberRole(user, uint(companyId), models.RoleMember); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	messages, err := services.ListChatMessages(uint(companyId), take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(messages)
}

func sendChatMessage(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	companyId, _ := c.ParamsInt("companyId")

	var data struct {
		Content string `json:"content" validate:"required,max=4096"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	if _, err := services.EnsureMemberRole(user, uint(companyId), models.RoleMember); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	message, err := services.NewChatMessage(models.ChatMessage{
		Content:   data.Content,
		CompanyID: uint(companyId),
		AccountID: user.ID,
		Account:   user,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(message)
}

func streamChatEvents(c *fiber.Ctx) error {
	if err := exts.EnsureAuthenticated(c); err != nil {
		return err
	}
	user := c.Locals("user").(models.Account)

	companyId, _ := c.ParamsInt("companyId")

	if _, err := services.EnsureMemberRole(user, uint(companyId), models.RoleMember); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	subscriber := services.SubscribeChat(uint(companyId))

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer services.UnsubscribeChat(uint(companyId), subscriber)

		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		pumpChatEvents(w, subscriber.Chan(), ticker.C)
	}))

	return nil
}

// pumpChatEvents writes chat events to an SSE stream until the events
// channel closes or a write fails. The keep-alive comments sent on each
// tick surface dead connections even while the room is quiet, without
// them an idle stream would hold its subscription until the next
// broadcast.
func pumpChatEvents(w *bufio.Writer, events <-chan services.ChatEvent, keepAlive <-chan time.Time) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			raw, err := jsoniter.Marshal(event)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", raw); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		case <-keepAlive:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}
}
