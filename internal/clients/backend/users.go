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

func (c *Client) Users(ctx context.Context) ([]entity.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/Usuarios", nil)
	if err != nil {
		return nil, err
	}

	var recs []normalize.UserRecord
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	users := make([]entity.User, 0, len(recs))

	for _, rec := range recs {
		u, issues := normalize.User(rec)
		logIssues(ctx, "user", issues)

		users = append(users, u)
	}

	return users, nil
}

func (c *Client) User(ctx context.Context, id int) (entity.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/Usuarios/"+strconv.Itoa(id), nil)
	if err != nil {
		return entity.User{}, err
	}

	var rec normalize.UserRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return entity.User{}, fmt.Errorf("decode response: %w", err)
	}

	u, issues := normalize.User(rec)
	logIssues(ctx, "user", issues)

	return u, nil
}

// CreateUser registers a new account. POST /Usuarios answers 200 or
// 201 depending on the backend version; both pass.
func (c *Client) CreateUser(ctx context.Context, u entity.User, password string) error {
	_, err := c.do(ctx, http.MethodPost, "/Usuarios", normalize.UserPayloadFrom(u, password))

	return err
}

// UpdateUser sends the user id in the URL only, never in the body; the
// backend rejects payloads that repeat it.
func (c *Client) UpdateUser(ctx context.Context, id int, u entity.User, password string) error {
	_, err := c.do(ctx, http.MethodPut, "/Usuarios/"+strconv.Itoa(id), normalize.UserPayloadFrom(u, password))

	return err
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, "/Usuarios/"+strconv.Itoa(id), nil)

	return err
}

// LoginResult is the answer of POST /Usuarios/login after the wrapped
// user has been normalized.
type LoginResult struct {
	User    entity.User
	Token   string
	Message string
}

type loginResponse struct {
	Mensaje string               `json:"Mensaje"`
	Usuario normalize.UserRecord `json:"Usuario"`
	Token   string               `json:"Token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body, err := c.do(ctx, http.MethodPost, "/Usuarios/login", normalize.CredentialsPayload{
		Correo:     email,
		Contrasena: password,
	})
	if err != nil {
		return LoginResult{}, err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return LoginResult{}, fmt.Errorf("decode response: %w", err)
	}

	u, issues := normalize.User(resp.Usuario)
	logIssues(ctx, "user", issues)

	// The login endpoint does not always echo the email back.
	if u.Email == "" {
		u.Email = email
	}

	return LoginResult{User: u, Token: resp.Token, Message: resp.Mensaje}, nil
}

// CurrentUser revalidates the session against GET /Usuarios/actual.
func (c *Client) CurrentUser(ctx context.Context) (entity.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/Usuarios/actual", nil)
	if err != nil {
		return entity.User{}, err
	}

	var rec normalize.UserRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return entity.User{}, fmt.Errorf("decode response: %w", err)
	}

	u, issues := normalize.User(rec)
	logIssues(ctx, "user", issues)

	return u, nil
}
