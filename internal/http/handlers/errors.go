package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"shopapi/internal/domain"
	applog "shopapi/internal/log"
	"shopapi/internal/metrics"
	"shopapi/internal/services"
	"shopapi/internal/validate"
)

// StandardError is the body of every non-2xx JSON response.
type StandardError struct {
	Timestamp domain.Instant `json:"timestamp"`
	Status    int            `json:"status"`
	Error     string         `json:"error"`
	Message   string         `json:"message"`
	Path      string         `json:"path"`
}

func standardError(c *fiber.Ctx, status int, label, msg string) error {
	return c.Status(status).JSON(StandardError{
		Timestamp: domain.Now(),
		Status:    status,
		Error:     label,
		Message:   msg,
		Path:      c.Path(),
	})
}

// ErrorHandler translates service, store and transport failures into
// StandardError responses. Unclassified errors are logged and answered with
// a generic 500 so nothing internal reaches the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		nf  *services.NotFoundError
		dbe *services.DatabaseError
		ae  *domain.ArgumentError
		fe  *fiber.Error
	)
	switch {
	case errors.As(err, &nf):
		return standardError(c, fiber.StatusNotFound, "Resource not found", nf.Error())
	case errors.As(err, &dbe):
		metrics.Conflict(dbe.Resource)
		applog.Security(c, "store.conflict", map[string]any{"resource": dbe.Resource, "cause": fmt.Sprint(dbe.Err)})
		return standardError(c, fiber.StatusBadRequest, "Database error", dbe.Msg)
	case errors.As(err, &ae):
		// only the domain message; store wrapping around it stays server-side
		return standardError(c, fiber.StatusBadRequest, "Invalid argument", ae.Msg)
	case errors.Is(err, domain.ErrInvalidArgument):
		return standardError(c, fiber.StatusBadRequest, "Invalid argument", "Invalid argument")
	case errors.As(err, &fe):
		return standardError(c, fe.Code, utils.StatusMessage(fe.Code), fe.Message)
	}
	applog.Error(c, "server.error", err, nil)
	return standardError(c, fiber.StatusInternalServerError, utils.StatusMessage(fiber.StatusInternalServerError),
		"Something went wrong. Please try again.")
}

// pathID reads :id. Anything that is not a positive integer cannot name a
// stored row and is reported as not found.
func pathID(c *fiber.Ctx, resource string) (int64, error) {
	raw := c.Params("id")
	id, ok := validate.ID(raw)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id", "value": raw})
		return 0, &services.NotFoundError{Resource: resource, ID: raw}
	}
	return id, nil
}

// parseBody decodes a JSON request body into v.
func parseBody(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return err
		}
		applog.Security(c, "validation.fail", map[string]any{"field": "body", "error": err.Error()})
		return fiber.NewError(fiber.StatusBadRequest, "Malformed JSON body")
	}
	return nil
}

func invalid(c *fiber.Ctx, field, msg string) error {
	applog.Security(c, "validation.fail", map[string]any{"field": field})
	return domain.Invalid("%s", msg)
}

func created(c *fiber.Ctx, base string, id int64, v any) error {
	c.Location(base + "/" + strconv.FormatInt(id, 10))
	return c.Status(fiber.StatusCreated).JSON(v)
}
