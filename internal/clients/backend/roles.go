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

func (c *Client) Roles(ctx context.Context) ([]entity.Role, error) {
	body, err := c.do(ctx, http.MethodGet, "/Rols", nil)
	if err != nil {
		return nil, err
	}

	var recs []normalize.RoleRecord
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	roles := make([]entity.Role, 0, len(recs))

	for _, rec := range recs {
		r, issues := normalize.Role(rec)
		logIssues(ctx, "role", issues)

		roles = append(roles, r)
	}

	return roles, nil
}

func (c *Client) Role(ctx context.Context, id int) (entity.Role, error) {
	body, err := c.do(ctx, http.MethodGet, "/Rols/"+strconv.Itoa(id), nil)
	if err != nil {
		return entity.Role{}, err
	}

	var rec normalize.RoleRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return entity.Role{}, fmt.Errorf("decode response: %w", err)
	}

	r, issues := normalize.Role(rec)
	logIssues(ctx, "role", issues)

	return r, nil
}

func (c *Client) CreateRole(ctx context.Context, name string) error {
	_, err := c.do(ctx, http.MethodPost, "/Rols", normalize.RolePayload{Nombre: name})

	return err
}

func (c *Client) UpdateRole(ctx context.Context, id int, name string) error {
	_, err := c.do(ctx, http.MethodPut, "/Rols/"+strconv.Itoa(id), normalize.RolePayload{Nombre: name})

	return err
}

func (c *Client) DeleteRole(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/Rols/"+strconv.Itoa(id), nil)

	return err
}
