package handler

import (
	"bytes"
	"encoding/json"
	"strings"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into dst and runs its validate tags.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Invalid request body"), err.Error())
	}

	if err := c.Validate(dst); err != nil {
		return err
	}

	return nil
}

// bindQuery decodes query parameters only, ignoring path params and body.
func bindQuery(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, dst); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Invalid query parameters"), err.Error())
	}

	return nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithMessage("Invalid " + name)
	}

	return id, nil
}

// entityPage passes raw paging through; usecases apply defaults and caps.
func entityPage(page, limit int) entity.PageRequest {
	return entity.PageRequest{Page: page, Limit: limit}
}

// numberText accepts a JSON number or string and keeps its text, so decimal fields are parsed
// and validated once by the usecase.
type numberText string

func (n *numberText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = numberText(strings.TrimSpace(s))
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return err
		}
		*n = numberText(num.String())
	}

	return nil
}

func (n *numberText) ptr() *string {
	if n == nil {
		return nil
	}
	s := string(*n)

	return &s
}

// optionalParent distinguishes an absent parentId from an explicit null or empty one.
type optionalParent struct {
	Set bool
	ID  *uuid.UUID
}

func (p *optionalParent) UnmarshalJSON(data []byte) error {
	p.Set = true
	p.ID = nil

	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}

	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid parentId")
	}
	p.ID = &id

	return nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}
