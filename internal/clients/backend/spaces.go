package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ucampus/reservas-cli/internal/entity"
	"github.com/ucampus/reservas-cli/internal/normalize"
)

func (c *Client) Spaces(ctx context.Context) ([]entity.Space, error) {
	body, err := c.do(ctx, http.MethodGet, "/Espacios", nil)
	if err != nil {
		return nil, err
	}

	var recs []normalize.SpaceRecord
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	spaces := make([]entity.Space, 0, len(recs))

	for _, rec := range recs {
		s, issues := normalize.Space(rec)
		logIssues(ctx, "space", issues)

		spaces = append(spaces, s)
	}

	return spaces, nil
}

func (c *Client) Space(ctx context.Context, id int) (entity.Space, error) {
	body, err := c.do(ctx, http.MethodGet, "/Espacios/"+strconv.Itoa(id), nil)
	if err != nil {
		return entity.Space{}, err
	}

	var rec normalize.SpaceRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return entity.Space{}, fmt.Errorf("decode response: %w", err)
	}

	s, issues := normalize.Space(rec)
	logIssues(ctx, "space", issues)

	return s, nil
}

func (c *Client) CreateSpace(ctx context.Context, s entity.Space) error {
	_, err := c.do(ctx, http.MethodPost, "/Espacios", normalize.SpacePayloadFrom(s))

	return err
}

func (c *Client) UpdateSpace(ctx context.Context, id int, s entity.Space) error {
	_, err := c.do(ctx, http.MethodPut, "/Espacios/"+strconv.Itoa(id), normalize.SpacePayloadFrom(s))

	return err
}

func (c *Client) DeleteSpace(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/Espacios/"+strconv.Itoa(id), nil)

	return err
}
