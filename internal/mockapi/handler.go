package mockapi

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/common"
	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

const supportURL = "https://reqres.in/#support-heading"
const supportText = "Tired of writing endless social media content? Let Content Caddy generate it for you."

// Handler serves the user-management API from a Directory.
type Handler struct {
	users        *Directory
	cfg          *Config
	passwordHash []byte
	log          logging.Logger
}

// NewHandler hashes the shared seed password once and returns the handler.
func NewHandler(users *Directory, cfg *Config, log logging.Logger) (*Handler, error) {
	hash, err := hashPassword(cfg.Password)
	if err != nil {
		return nil, err
	}
	return &Handler{users: users, cfg: cfg, passwordHash: hash, log: log}, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token string `json:"token"`
}

type listResponse struct {
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	Total      int            `json:"total"`
	TotalPages int            `json:"total_pages"`
	Data       []models.User  `json:"data"`
	Support    models.Support `json:"support"`
}

// Router mounts every route under /api.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(h.requestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", common.RequestIDHeader},
		ExposedHeaders: []string{common.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/signin", h.handleSignIn)

		r.Route("/users", func(r chi.Router) {
			r.Use(h.authorize)
			r.Get("/", h.handleList)
			r.Post("/", h.handleCreate)
			r.Put("/{id}", h.handleUpdate)
			r.Delete("/{id}", h.handleDelete)
		})
	})

	return r
}

func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeader, id)

		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", id,
			"latency_ms", time.Since(started).Milliseconds(),
		)
	})
}

// authorize accepts the fixed API key or a session token issued by
// /signin.
func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.APIKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		tok, ok := common.BearerToken(r.Header.Get(common.AuthorizationHeader))
		if !ok {
			h.writeError(w, http.StatusUnauthorized, "missing API key")
			return
		}
		if tok == h.cfg.APIKey {
			next.ServeHTTP(w, r)
			return
		}
		if _, err := ParseToken(tok, []byte(h.cfg.SecretKey)); err != nil {
			h.writeError(w, http.StatusUnauthorized, "invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	email := req.Email
	if email == "" {
		email = req.Username
	}
	switch {
	case email == "":
		h.writeError(w, http.StatusBadRequest, "Missing email or username")
		return
	case req.Password == "":
		h.writeError(w, http.StatusBadRequest, "Missing password")
		return
	}

	u, ok := h.users.ByEmail(email)
	if !ok || !checkPassword(h.passwordHash, req.Password) {
		h.writeError(w, http.StatusBadRequest, "user not found")
		return
	}

	tok, err := IssueToken(u.Email, []byte(h.cfg.SecretKey), h.cfg.TokenTTL)
	if err != nil {
		h.log.Error(r.Context(), "token not issued", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, signInResponse{Token: tok})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	data, total := h.users.Page(page, h.cfg.PerPage)
	h.writeJSON(w, http.StatusOK, listResponse{
		Page:       page,
		PerPage:    h.cfg.PerPage,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(h.cfg.PerPage))),
		Data:       data,
		Support:    models.Support{URL: supportURL, Text: supportText},
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in models.UserInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	h.writeJSON(w, http.StatusCreated, h.users.Create(in))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var patch models.UserInput
	if err := decode(r, &patch); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	u, ok := h.users.Update(id, patch)
	if !ok {
		h.writeError(w, http.StatusNotFound, "user not found")
		return
	}
	h.writeJSON(w, http.StatusOK, u)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if !h.users.Delete(id) {
		h.writeError(w, http.StatusNotFound, "user not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decode(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}
